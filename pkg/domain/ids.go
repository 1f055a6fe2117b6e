package domain

// Typed identifiers replace the stringly-typed foreign keys of the source
// data model. All references remain soft: an empty value means "unset", a
// non-empty value may dangle, and no layer enforces existence. Consumers
// resolve them through the catalogue resolver, which reports absence rather
// than failing.

// MaterialID references a Material record.
type MaterialID string

// DeviceID references a Device record.
type DeviceID string

// RawMaterialID references a RawMaterial record.
type RawMaterialID string

// ProvenanceID references a DataProvenance record.
type ProvenanceID string

// SourceID references a DataSource record.
type SourceID string

// SourcingID references a Sourcing record.
type SourcingID string

// ProfileID references a TargetProfile record.
type ProfileID string

// FormulationID references a Formulation record.
type FormulationID string

// AdditiveID references a MaterialAdditive record.
type AdditiveID string

// CompatibilizerID references a Compatibilizer record.
type CompatibilizerID string

// PurposeID references a Purpose record.
type PurposeID string

// ReferenceMaterialID references a ReferenceMaterial record.
type ReferenceMaterialID string

// DerivedID references the Level-2 derived value a raw measurement
// contributes to. The link is advisory; no cardinality is enforced.
type DerivedID string

// IsZero reports whether the reference is unset.
func (id MaterialID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id DeviceID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id RawMaterialID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id ProvenanceID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id SourceID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id SourcingID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id ProfileID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id FormulationID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id AdditiveID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id CompatibilizerID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id PurposeID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id ReferenceMaterialID) IsZero() bool { return id == "" }

// IsZero reports whether the reference is unset.
func (id DerivedID) IsZero() bool { return id == "" }
