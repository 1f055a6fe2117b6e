package domain

// ReferentialSpecificGravity is the derived specific gravity of a material
// normalized against a reference standard (water at 4°C by default),
// computed as the mean of valid raw readings.
type ReferentialSpecificGravity struct {
	Base
	PropertyMeta
	DerivedMeta
	SpecificGravity float64 `json:"specific_gravity"`
	// ReferenceStandard names the normalization baseline (water_4c, water_20c,
	// air_stp, oil).
	ReferenceStandard     string  `json:"reference_standard"`
	ReferenceTemperatureC float64 `json:"reference_temperature_c"`
	SampleTemperatureC    float64 `json:"sample_temperature_c"`
}

// NewReferentialSpecificGravity constructs a derived specific gravity record
// normalized to water at 4°C.
func NewReferentialSpecificGravity(materialID MaterialID) *ReferentialSpecificGravity {
	return &ReferentialSpecificGravity{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Referential Specific Gravity",
			Description: "Specific gravity normalized against reference material",
			Category:    CategoryPhysical,
		},
		ReferenceStandard:     "water_4c",
		ReferenceTemperatureC: 4.0,
		SampleTemperatureC:    25.0,
	}
}

// Kind implements Record.
func (ReferentialSpecificGravity) Kind() EntityKind { return KindReferentialSpecificGravity }

// AbstractionLevel implements Leveled.
func (ReferentialSpecificGravity) AbstractionLevel() AbstractionLevel { return LevelDerived }

// GravityReading is a raw datapoint usable for specific gravity derivation.
// Pycnometer, hydrometer, and density meter datapoints all qualify.
type GravityReading interface {
	SpecificGravityReading() float64
}

// DeriveFromReadings recomputes the specific gravity as the mean of all
// valid readings. Readings with a non-positive value are skipped; an empty
// or all-invalid input leaves the stored value unchanged and returns it.
func (g *ReferentialSpecificGravity) DeriveFromReadings(readings []GravityReading) float64 {
	total, count := 0.0, 0
	for _, r := range readings {
		if v := r.SpecificGravityReading(); v > 0 {
			total += v
			count++
		}
	}
	if count == 0 {
		return g.SpecificGravity
	}
	g.SpecificGravity = total / float64(count)
	return g.SpecificGravity
}

// PycnometerMeasurement is a single pycnometer weighing set. The reading
// follows from three weighings of the same flask: empty, filled with the
// reference liquid, and filled with the sample.
type PycnometerMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// GravityID soft-links the derived record this reading contributes to.
	GravityID        DerivedID `json:"gravity_id"`
	EmptyWeightG     float64   `json:"empty_weight_g"`
	ReferenceWeightG float64   `json:"reference_weight_g"`
	SampleWeightG    float64   `json:"sample_weight_g"`
	TemperatureC     float64   `json:"temperature_c"`
	// Reading is the locally computed ratio, set by ComputeReading.
	Reading float64 `json:"reading"`
}

// NewPycnometerMeasurement constructs a raw pycnometer datapoint and
// computes its local reading from the three weights.
func NewPycnometerMeasurement(materialID MaterialID, gravityID DerivedID, emptyG, referenceG, sampleG float64) *PycnometerMeasurement {
	m := &PycnometerMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Pycnometer Measurement",
			Description: "Raw pycnometer weighing set",
			Category:    CategoryPhysical,
		},
		GravityID:        gravityID,
		EmptyWeightG:     emptyG,
		ReferenceWeightG: referenceG,
		SampleWeightG:    sampleG,
		TemperatureC:     25.0,
	}
	m.ComputeReading()
	return m
}

// Kind implements Record.
func (PycnometerMeasurement) Kind() EntityKind { return KindPycnometerMeasurement }

// AbstractionLevel implements Leveled.
func (PycnometerMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// ComputeReading recomputes the local ratio (W3-W1)/(W2-W1) from the stored
// weights. A non-positive reference mass leaves the reading unchanged.
func (m *PycnometerMeasurement) ComputeReading() float64 {
	referenceMass := m.ReferenceWeightG - m.EmptyWeightG
	sampleMass := m.SampleWeightG - m.EmptyWeightG
	if referenceMass > 0 {
		m.Reading = sampleMass / referenceMass
	}
	return m.Reading
}

// SpecificGravityReading implements the gravity derivation input.
func (m *PycnometerMeasurement) SpecificGravityReading() float64 { return m.Reading }

// HydrometerMeasurement is a single direct hydrometer scale reading.
type HydrometerMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// GravityID soft-links the derived record this reading contributes to.
	GravityID    DerivedID `json:"gravity_id"`
	Reading      float64   `json:"reading"`
	HydrometerID string    `json:"hydrometer_id"`
	TemperatureC float64   `json:"temperature_c"`
}

// NewHydrometerMeasurement constructs a raw hydrometer datapoint.
func NewHydrometerMeasurement(materialID MaterialID, gravityID DerivedID, reading float64) *HydrometerMeasurement {
	return &HydrometerMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Hydrometer Measurement",
			Description: "Raw hydrometer scale reading",
			Category:    CategoryPhysical,
		},
		GravityID:    gravityID,
		Reading:      reading,
		TemperatureC: 25.0,
	}
}

// Kind implements Record.
func (HydrometerMeasurement) Kind() EntityKind { return KindHydrometerMeasurement }

// AbstractionLevel implements Leveled.
func (HydrometerMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// SpecificGravityReading implements the gravity derivation input.
func (m *HydrometerMeasurement) SpecificGravityReading() float64 { return m.Reading }

// DensityMeterMeasurement is a single oscillating U-tube density meter
// datapoint; the reading is the ratio of measured sample density to the
// reference density.
type DensityMeterMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// GravityID soft-links the derived record this reading contributes to.
	GravityID            DerivedID `json:"gravity_id"`
	DensityGPerCm3       float64   `json:"density_g_per_cm3"`
	ReferenceDensityGCm3 float64   `json:"reference_density_g_cm3"`
	TemperatureC         float64   `json:"temperature_c"`
	// Reading is the locally computed ratio, set by ComputeReading.
	Reading float64 `json:"reading"`
}

// NewDensityMeterMeasurement constructs a raw density meter datapoint
// against water at 4°C and computes its local reading.
func NewDensityMeterMeasurement(materialID MaterialID, gravityID DerivedID, densityGPerCm3 float64) *DensityMeterMeasurement {
	m := &DensityMeterMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Density Meter Measurement",
			Description: "Raw oscillating density meter datapoint",
			Category:    CategoryPhysical,
		},
		GravityID:            gravityID,
		DensityGPerCm3:       densityGPerCm3,
		ReferenceDensityGCm3: 1.0,
		TemperatureC:         25.0,
	}
	m.ComputeReading()
	return m
}

// Kind implements Record.
func (DensityMeterMeasurement) Kind() EntityKind { return KindDensityMeterMeasurement }

// AbstractionLevel implements Leveled.
func (DensityMeterMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// ComputeReading recomputes the density ratio. Non-positive density or
// reference density leaves the reading unchanged.
func (m *DensityMeterMeasurement) ComputeReading() float64 {
	if m.ReferenceDensityGCm3 > 0 && m.DensityGPerCm3 > 0 {
		m.Reading = m.DensityGPerCm3 / m.ReferenceDensityGCm3
	}
	return m.Reading
}

// SpecificGravityReading implements the gravity derivation input.
func (m *DensityMeterMeasurement) SpecificGravityReading() float64 { return m.Reading }
