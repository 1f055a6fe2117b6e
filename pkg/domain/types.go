// Package domain defines the core catalogue entities, abstraction levels, and
// derivation primitives used by materialcore.
package domain

import "time"

// EntityKind identifies the type of record stored in the catalogue.
type EntityKind string

// Supported entity kind identifiers used as persistence buckets and registry keys.
const (
	// KindMaterial identifies a material record.
	KindMaterial EntityKind = "material"
	// KindRawMaterial identifies a raw material (ingredient) record.
	KindRawMaterial EntityKind = "raw_material"
	// KindReferenceMaterial identifies a curated reference material record.
	KindReferenceMaterial EntityKind = "reference_material"
	// KindHardnessScale identifies a derived hardness value record.
	KindHardnessScale EntityKind = "hardness_scale"
	// KindShoreMeasurement identifies a raw Shore durometer datapoint.
	KindShoreMeasurement EntityKind = "shore_measurement"
	// KindKrebsViscosity identifies a derived Krebs viscosity record.
	KindKrebsViscosity EntityKind = "krebs_viscosity"
	// KindStormerMeasurement identifies a raw Stormer viscometer datapoint.
	KindStormerMeasurement EntityKind = "stormer_measurement"
	// KindUltimateTensileStrength identifies a derived UTS record.
	KindUltimateTensileStrength EntityKind = "ultimate_tensile_strength"
	// KindTensileMeasurement identifies a raw tensile test datapoint.
	KindTensileMeasurement EntityKind = "tensile_measurement"
	// KindMFIValue identifies a derived melt flow index record.
	KindMFIValue EntityKind = "mfi_value"
	// KindMFIMeasurement identifies a raw extrusion plastometer cut.
	KindMFIMeasurement EntityKind = "mfi_measurement"
	// KindReferentialSpecificGravity identifies a derived specific gravity record.
	KindReferentialSpecificGravity EntityKind = "referential_specific_gravity"
	// KindPycnometerMeasurement identifies a raw pycnometer datapoint.
	KindPycnometerMeasurement EntityKind = "pycnometer_measurement"
	// KindHydrometerMeasurement identifies a raw hydrometer datapoint.
	KindHydrometerMeasurement EntityKind = "hydrometer_measurement"
	// KindDensityMeterMeasurement identifies a raw oscillating density meter datapoint.
	KindDensityMeterMeasurement EntityKind = "density_meter_measurement"
	// KindCriticalSurfaceTension identifies a derived solid surface energy record.
	KindCriticalSurfaceTension EntityKind = "critical_surface_tension"
	// KindContactAngleMeasurement identifies a raw contact angle datapoint.
	KindContactAngleMeasurement EntityKind = "contact_angle_measurement"
	// KindSurfaceTensionValue identifies a derived liquid surface tension record.
	KindSurfaceTensionValue EntityKind = "surface_tension_value"
	// KindWilhelmyMeasurement identifies a raw Wilhelmy plate datapoint.
	KindWilhelmyMeasurement EntityKind = "wilhelmy_measurement"
	// KindCoefficientOfThermalExpansion identifies a derived CTE record.
	KindCoefficientOfThermalExpansion EntityKind = "coefficient_of_thermal_expansion"
	// KindTMAMeasurement identifies a raw thermomechanical analysis datapoint.
	KindTMAMeasurement EntityKind = "tma_measurement"
	// KindMeltingPointValue identifies a derived melting temperature record.
	KindMeltingPointValue EntityKind = "melting_point_value"
	// KindDSCMeltingMeasurement identifies a raw DSC scan datapoint.
	KindDSCMeltingMeasurement EntityKind = "dsc_melting_measurement"
	// KindStorageModulus identifies a derived storage modulus record.
	KindStorageModulus EntityKind = "storage_modulus"
	// KindDMAMeasurement identifies a raw dynamic mechanical analysis datapoint.
	KindDMAMeasurement EntityKind = "dma_measurement"
	// KindRheometerMeasurement identifies a raw oscillatory rheometer datapoint.
	KindRheometerMeasurement EntityKind = "rheometer_measurement"
	// KindResolution identifies a multi-scale resolution definition record.
	KindResolution EntityKind = "resolution"
	// KindPurpose identifies a generic purpose record.
	KindPurpose EntityKind = "purpose"
	// KindMachinability identifies a CNC machinability purpose record.
	KindMachinability EntityKind = "machinability"
	// KindPrintability identifies a 3D printability purpose record.
	KindPrintability EntityKind = "printability"
	// KindMoldFabrication identifies a mold fabrication purpose record.
	KindMoldFabrication EntityKind = "mold_fabrication"
	// KindDevice identifies a material-related device record.
	KindDevice EntityKind = "device"
	// KindSourcing identifies a raw material sourcing record.
	KindSourcing EntityKind = "sourcing"
	// KindDataSource identifies an external data source record.
	KindDataSource EntityKind = "data_source"
	// KindDataProvenance identifies a provenance bundle record.
	KindDataProvenance EntityKind = "data_provenance"
	// KindMaterialAdditive identifies an additive record.
	KindMaterialAdditive EntityKind = "material_additive"
	// KindPropertyEffect identifies an additive property effect record.
	KindPropertyEffect EntityKind = "property_effect"
	// KindAdditiveCompatibility identifies an additive/base compatibility record.
	KindAdditiveCompatibility EntityKind = "additive_compatibility"
	// KindCompatibilizer identifies a compatibilizer record.
	KindCompatibilizer EntityKind = "compatibilizer"
	// KindTargetMaterialProfile identifies a target material profile record.
	KindTargetMaterialProfile EntityKind = "target_material_profile"
	// KindPropertyTarget identifies a single property target within a profile.
	KindPropertyTarget EntityKind = "property_target"
	// KindFormulation identifies a formulation record.
	KindFormulation EntityKind = "formulation"
	// KindFormulationComponent identifies a formulation component record.
	KindFormulationComponent EntityKind = "formulation_component"
	// KindFormulationIntent identifies a formulation intent record.
	KindFormulationIntent EntityKind = "formulation_intent"
)

// AbstractionLevel tags how specific a property record is, from generic
// concept (0) to raw instrument datapoint (3). The level is fixed per
// concrete type and reported via the Leveled interface, never stored as a
// mutable field.
type AbstractionLevel int

// Abstraction levels of the property hierarchy.
const (
	// LevelConcept is the generic property reference (e.g. "Hardness").
	LevelConcept AbstractionLevel = 0
	// LevelFamily is the property family abstraction (e.g. "Viscosity").
	LevelFamily AbstractionLevel = 1
	// LevelDerived is a standardized, reportable derived value.
	LevelDerived AbstractionLevel = 2
	// LevelMeasurement is a single raw instrument datapoint.
	LevelMeasurement AbstractionLevel = 3
)

// Leveled is implemented by every record that participates in the
// abstraction/derivation hierarchy.
type Leveled interface {
	AbstractionLevel() AbstractionLevel
}

// PropertyCategory groups property families by the physics they describe.
type PropertyCategory string

// Property categories mirrored from the catalogue taxonomy.
const (
	CategoryMechanical  PropertyCategory = "mechanical"
	CategoryRheological PropertyCategory = "rheological"
	CategoryPhysical    PropertyCategory = "physical"
	CategorySurface     PropertyCategory = "surface"
	CategoryThermal     PropertyCategory = "thermal"
)

// ResolutionScale identifies the simulation scale a resolution record targets.
type ResolutionScale string

// Resolution scales from human-scale experiments down to quantum methods.
const (
	ScaleExperimental ResolutionScale = "experimental" // level 0, mm-m
	ScaleContinuum    ResolutionScale = "continuum"    // level 1, FEM
	ScaleMesoscale    ResolutionScale = "mesoscale"    // level 2, CGMD
	ScaleAtomistic    ResolutionScale = "atomistic"    // level 3, MD
	ScaleQuantum      ResolutionScale = "quantum"      // level 4, DFT
)

// Level returns the numeric scale level (0=experimental .. 4=quantum).
// Unknown scales report -1.
func (s ResolutionScale) Level() int {
	switch s {
	case ScaleExperimental:
		return 0
	case ScaleContinuum:
		return 1
	case ScaleMesoscale:
		return 2
	case ScaleAtomistic:
		return 3
	case ScaleQuantum:
		return 4
	default:
		return -1
	}
}

// PurposeCategory identifies the intended-use family of a purpose record.
type PurposeCategory string

// Purpose categories. PurposeGeneric marks purposes not yet modeled as a
// dedicated record type.
const (
	PurposeGeneric         PurposeCategory = "generic"
	PurposeCNCMachining    PurposeCategory = "cnc_machining"
	PurposeThreeDPrinting  PurposeCategory = "3d_printing"
	PurposeMoldFabrication PurposeCategory = "mold_fabrication"
)

// DeviceCategory identifies the family of a material-related device.
type DeviceCategory string

// Device categories.
const (
	DeviceGeneric         DeviceCategory = "generic"
	DeviceMaterialTesting DeviceCategory = "material_testing"
	DeviceCNCMill         DeviceCategory = "cnc_mill"
	DeviceCNCLathe        DeviceCategory = "cnc_lathe"
	DeviceThreeDPrinter   DeviceCategory = "3d_printer"
)

// SourcingKind identifies how a raw material can be obtained.
type SourcingKind string

// Sourcing kinds. Commercial sourcing may soft-link to a natural or
// open-source sourcing record describing the same supply chain.
const (
	SourcingNatural         SourcingKind = "natural"
	SourcingOpenSourceLocal SourcingKind = "open_source_local"
	SourcingCommercial      SourcingKind = "commercial"
)

// Base contains common fields for all catalogue records. IDs are minted by
// the store on first persist; records constructed with an empty ID are valid.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID returns the store-assigned identifier, empty until persisted.
func (b *Base) RecordID() string { return b.ID }

// SetRecordID overwrites the store-assigned identifier.
func (b *Base) SetRecordID(id string) { b.ID = id }

// StampCreated records creation and update timestamps.
func (b *Base) StampCreated(now time.Time) {
	b.CreatedAt = now
	b.UpdatedAt = now
}

// StampUpdated records an update timestamp.
func (b *Base) StampUpdated(now time.Time) { b.UpdatedAt = now }

// Record is implemented by every storable catalogue entity through its
// embedded Base plus a Kind method. Stores deal exclusively in pointers so
// ID and timestamp stamping mutate the caller's copy.
type Record interface {
	Kind() EntityKind
	RecordID() string
	SetRecordID(string)
	StampCreated(time.Time)
	StampUpdated(time.Time)
}
