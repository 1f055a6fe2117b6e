package domain

// Purposed is implemented by every intended-use record type.
type Purposed interface {
	Record
	PurposeCategory() PurposeCategory
}

// Purpose is the generic intended-use record for categories not yet modeled
// as a dedicated type. Unlike the dedicated purpose records, it accepts a
// caller-supplied category override.
type Purpose struct {
	Base
	MaterialID  MaterialID      `json:"material_id"`
	DeviceID    DeviceID        `json:"device_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    PurposeCategory `json:"category"`
	Notes       string          `json:"notes"`
}

// NewPurpose constructs a generic purpose record. An empty category defaults
// to PurposeGeneric.
func NewPurpose(materialID MaterialID, category PurposeCategory) *Purpose {
	if category == "" {
		category = PurposeGeneric
	}
	return &Purpose{MaterialID: materialID, Category: category}
}

// Kind implements Record.
func (Purpose) Kind() EntityKind { return KindPurpose }

// PurposeCategory returns the record's category tag.
func (p *Purpose) PurposeCategory() PurposeCategory { return p.Category }

// Machinability records whether a material can realistically be CNC
// machined with a particular device, and under what constraints. It pairs a
// material with a device; both references are soft.
type Machinability struct {
	Base
	MaterialID  MaterialID `json:"material_id"`
	DeviceID    DeviceID   `json:"device_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`

	IsMachinable    bool   `json:"is_machinable"`
	MachiningMethod string `json:"machining_method"`

	// Hard constraints compared between material demand and device capability.
	HardnessLimit           float64 `json:"hardness_limit"`
	MaterialHardness        float64 `json:"material_hardness"`
	SpindlePowerRequiredKw  float64 `json:"spindle_power_required_kw"`
	SpindlePowerAvailableKw float64 `json:"spindle_power_available_kw"`

	MinSpindleSpeedRPM float64 `json:"min_spindle_speed_rpm"`
	MaxSpindleSpeedRPM float64 `json:"max_spindle_speed_rpm"`
	FeedRateRange      string  `json:"feed_rate_range"`

	Abrasiveness       string `json:"abrasiveness"`
	ChipCharacteristic string `json:"chip_characteristic"`
	HeatSensitivity    string `json:"heat_sensitivity"`

	CoolantRequired        bool   `json:"coolant_required"`
	CoolantType            string `json:"coolant_type"`
	SpecialTooling         string `json:"special_tooling"`
	EnclosureRequired      bool   `json:"enclosure_required"`
	DustExtractionRequired bool   `json:"dust_extraction_required"`

	LimitingFactors []string `json:"limiting_factors"`
	Notes           string   `json:"notes"`
}

// NewMachinability constructs a machinability purpose pairing a material
// with a CNC device.
func NewMachinability(materialID MaterialID, deviceID DeviceID) *Machinability {
	return &Machinability{
		MaterialID:  materialID,
		DeviceID:    deviceID,
		Name:        "CNC Machinable",
		Description: "Base machinability conditions for CNC processing",
	}
}

// Kind implements Record.
func (Machinability) Kind() EntityKind { return KindMachinability }

// PurposeCategory returns the fixed category tag of the record type.
func (Machinability) PurposeCategory() PurposeCategory { return PurposeCNCMachining }

// Printability records whether a material can realistically be 3D printed
// with a particular device. FDM fields are primary; resin and powder fields
// cover SLA/SLS processes.
type Printability struct {
	Base
	MaterialID  MaterialID `json:"material_id"`
	DeviceID    DeviceID   `json:"device_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`

	IsPrintable        bool   `json:"is_printable"`
	PrintingTechnology string `json:"printing_technology"`

	// FDM constraints.
	NozzleTempMinC       float64 `json:"nozzle_temp_min_c"`
	NozzleTempMaxC       float64 `json:"nozzle_temp_max_c"`
	DeviceNozzleTempMaxC float64 `json:"device_nozzle_temp_max_c"`
	BedTempRequiredC     float64 `json:"bed_temp_required_c"`
	DeviceBedTempMaxC    float64 `json:"device_bed_temp_max_c"`
	FilamentDiameterMm   float64 `json:"filament_diameter_mm"`

	// Resin (SLA/DLP) constraints.
	WavelengthRequiredNm float64 `json:"wavelength_required_nm"`
	DeviceWavelengthNm   float64 `json:"device_wavelength_nm"`

	// Powder (SLS) constraints.
	LaserPowerRequiredW float64 `json:"laser_power_required_w"`
	DeviceLaserPowerW   float64 `json:"device_laser_power_w"`

	MinLayerHeightMm float64 `json:"min_layer_height_mm"`
	MaxLayerHeightMm float64 `json:"max_layer_height_mm"`
	PrintSpeedRange  string  `json:"print_speed_range"`

	MaterialForm          string `json:"material_form"`
	MaterialFormAvailable bool   `json:"material_form_available"`

	EnclosureRequired   bool    `json:"enclosure_required"`
	VentilationRequired bool    `json:"ventilation_required"`
	DryingRequired      bool    `json:"drying_required"`
	DryingTempC         float64 `json:"drying_temp_c"`
	DryingTimeH         float64 `json:"drying_time_h"`

	Notes string `json:"notes"`
}

// NewPrintability constructs a printability purpose pairing a material with
// a 3D printing device.
func NewPrintability(materialID MaterialID, deviceID DeviceID) *Printability {
	return &Printability{
		MaterialID:  materialID,
		DeviceID:    deviceID,
		Name:        "3D Printable",
		Description: "Base printability conditions for additive manufacturing",
	}
}

// Kind implements Record.
func (Printability) Kind() EntityKind { return KindPrintability }

// PurposeCategory returns the fixed category tag of the record type.
func (Printability) PurposeCategory() PurposeCategory { return PurposeThreeDPrinting }

// MoldFabrication records a material's suitability for producing
// fine-resolution molds, regardless of whether the mold is printed, milled,
// turned, or cast.
type MoldFabrication struct {
	Base
	MaterialID  MaterialID `json:"material_id"`
	DeviceID    DeviceID   `json:"device_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`

	// FabricationMethod distinguishes the mold production route
	// (3d_printing, cnc_milling, cnc_turning, geopolymer_cast).
	FabricationMethod    string  `json:"fabrication_method"`
	MinFeatureSizeMm     float64 `json:"min_feature_size_mm"`
	SurfaceFinishRaUm    float64 `json:"surface_finish_ra_um"`
	DimensionalAccMm     float64 `json:"dimensional_accuracy_mm"`
	ThermalStabilityMaxC float64 `json:"thermal_stability_max_c"`
	ReleaseAngleMinDeg   float64 `json:"release_angle_min_deg"`
	ExpectedMoldLife     int     `json:"expected_mold_life"`
	PostProcessing       string  `json:"post_processing"`
	Notes                string  `json:"notes"`
}

// NewMoldFabrication constructs a mold fabrication purpose for a material.
func NewMoldFabrication(materialID MaterialID, method string) *MoldFabrication {
	return &MoldFabrication{
		MaterialID:        materialID,
		Name:              "Mold Fabrication Purpose",
		Description:       "Material suitability for mold fabrication",
		FabricationMethod: method,
	}
}

// Kind implements Record.
func (MoldFabrication) Kind() EntityKind { return KindMoldFabrication }

// PurposeCategory returns the fixed category tag of the record type.
func (MoldFabrication) PurposeCategory() PurposeCategory { return PurposeMoldFabrication }
