package domain

// UltimateTensileStrength is the derived peak engineering stress reached
// during a tensile test. UTS is defined as the maximum of the stress curve,
// not its mean, so the derivation takes a max over readings.
type UltimateTensileStrength struct {
	Base
	PropertyMeta
	DerivedMeta
	UTSMPa            float64 `json:"uts_mpa"`
	YieldStrengthMPa  float64 `json:"yield_strength_mpa"`
	ElongationAtBreak float64 `json:"elongation_at_break"`
	YoungsModulusMPa  float64 `json:"youngs_modulus_mpa"`
	SpecimenType      string  `json:"specimen_type"`
	TestSpeedMmPerMin float64 `json:"test_speed_mm_per_min"`
}

// NewUltimateTensileStrength constructs a derived UTS record with ASTM D638
// defaults (Type I specimen, 5 mm/min crosshead speed).
func NewUltimateTensileStrength(materialID MaterialID) *UltimateTensileStrength {
	return &UltimateTensileStrength{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Ultimate Tensile Strength",
			Description: "Derived UTS value in MPa",
			Category:    CategoryMechanical,
		},
		DerivedMeta:       DerivedMeta{TemperatureC: 23.0},
		SpecimenType:      "Type I",
		TestSpeedMmPerMin: 5.0,
	}
}

// Kind implements Record.
func (UltimateTensileStrength) Kind() EntityKind { return KindUltimateTensileStrength }

// AbstractionLevel implements Leveled.
func (UltimateTensileStrength) AbstractionLevel() AbstractionLevel { return LevelDerived }

// TensileReading is a raw datapoint usable for UTS derivation.
type TensileReading interface {
	TensileForceN() float64
}

// DeriveFromReadings recomputes the UTS as the maximum engineering stress
// (forceN / original cross-section area) over all readings. Readings with a
// non-positive force are skipped. An empty input, an all-invalid input, or a
// non-positive cross-section area leaves the stored value unchanged and
// returns it.
func (u *UltimateTensileStrength) DeriveFromReadings(readings []TensileReading, crossSectionAreaMm2 float64) float64 {
	if len(readings) == 0 || crossSectionAreaMm2 <= 0 {
		return u.UTSMPa
	}
	maxStress, any := 0.0, false
	for _, r := range readings {
		if f := r.TensileForceN(); f > 0 {
			any = true
			if stress := f / crossSectionAreaMm2; stress > maxStress {
				maxStress = stress
			}
		}
	}
	if !any {
		return u.UTSMPa
	}
	u.UTSMPa = maxStress
	return u.UTSMPa
}

// TensileMeasurement is a single force/displacement datapoint from a
// universal testing machine pull.
type TensileMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// UTSID soft-links the derived record this reading contributes to.
	UTSID               DerivedID `json:"uts_id"`
	ForceN              float64   `json:"force_n"`
	DisplacementMm      float64   `json:"displacement_mm"`
	GaugeLengthMm       float64   `json:"gauge_length_mm"`
	SpecimenWidthMm     float64   `json:"specimen_width_mm"`
	SpecimenThicknessMm float64   `json:"specimen_thickness_mm"`
	TemperatureC        float64   `json:"temperature_c"`
}

// NewTensileMeasurement constructs a raw tensile test datapoint.
func NewTensileMeasurement(materialID MaterialID, utsID DerivedID, forceN, displacementMm float64) *TensileMeasurement {
	return &TensileMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Tensile Measurement",
			Description: "Raw tensile test datapoint",
			Category:    CategoryMechanical,
		},
		UTSID:          utsID,
		ForceN:         forceN,
		DisplacementMm: displacementMm,
		TemperatureC:   23.0,
	}
}

// Kind implements Record.
func (TensileMeasurement) Kind() EntityKind { return KindTensileMeasurement }

// AbstractionLevel implements Leveled.
func (TensileMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// TensileForceN implements the UTS derivation input.
func (m *TensileMeasurement) TensileForceN() float64 { return m.ForceN }

// EngineeringStressMPa returns force over the specimen's original
// cross-section, or zero when dimensions are missing.
func (m *TensileMeasurement) EngineeringStressMPa() float64 {
	area := m.SpecimenWidthMm * m.SpecimenThicknessMm
	if area <= 0 {
		return 0
	}
	return m.ForceN / area
}

// EngineeringStrainPercent returns displacement over gauge length as a
// percentage, or zero when the gauge length is missing.
func (m *TensileMeasurement) EngineeringStrainPercent() float64 {
	if m.GaugeLengthMm <= 0 {
		return 0
	}
	return (m.DisplacementMm / m.GaugeLengthMm) * 100
}
