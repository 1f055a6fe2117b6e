package domain

// HardnessScale is the derived hardness value on a standardized scale
// (Shore A, Shore D, Rockwell C, ...), computed as the average of multiple
// raw indentation readings taken at different locations on the sample
// (ASTM D2240 reporting convention).
type HardnessScale struct {
	Base
	PropertyMeta
	DerivedMeta
	HardnessValue float64 `json:"hardness_value"`
	// Scale names the hardness scale the value is reported on.
	Scale string `json:"scale"`
}

// NewHardnessScale constructs a derived hardness record for a material.
func NewHardnessScale(materialID MaterialID, scale string) *HardnessScale {
	return &HardnessScale{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Hardness Scale",
			Description: "Derived hardness on " + scale + " scale",
			Category:    CategoryMechanical,
		},
		DerivedMeta: DerivedMeta{TemperatureC: 23.0},
		Scale:       scale,
	}
}

// Kind implements Record.
func (HardnessScale) Kind() EntityKind { return KindHardnessScale }

// AbstractionLevel implements Leveled.
func (HardnessScale) AbstractionLevel() AbstractionLevel { return LevelDerived }

// HardnessReading is a raw datapoint usable for hardness derivation.
type HardnessReading interface {
	HardnessReading() float64
}

// DeriveFromReadings recomputes the hardness value as the mean of all valid
// readings. Readings with a non-positive value are skipped. An empty or
// all-invalid input leaves the stored value unchanged and returns it.
func (h *HardnessScale) DeriveFromReadings(readings []HardnessReading) float64 {
	total, count := 0.0, 0
	for _, r := range readings {
		if v := r.HardnessReading(); v > 0 {
			total += v
			count++
		}
	}
	if count == 0 {
		return h.HardnessValue
	}
	h.HardnessValue = total / float64(count)
	return h.HardnessValue
}

// ShoreMeasurement is a single Shore durometer reading, the raw leaf of the
// hardness hierarchy.
type ShoreMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// HardnessScaleID soft-links the derived record this reading contributes to.
	HardnessScaleID DerivedID `json:"hardness_scale_id"`
	Reading         float64   `json:"reading"`
	// ShoreType is the durometer scale letter (A, D, OO, ...).
	ShoreType string `json:"shore_type"`
	// ReadingTimeS is the dwell before reading, 1s or 15s per ASTM D2240.
	ReadingTimeS      float64 `json:"reading_time_s"`
	SampleThicknessMm float64 `json:"sample_thickness_mm"`
	LocationOnSample  string  `json:"location_on_sample"`
	TemperatureC      float64 `json:"temperature_c"`
}

// NewShoreMeasurement constructs a raw Shore durometer datapoint with the
// standard defaults (1s dwell, 6mm minimum sample, 23°C conditioning).
func NewShoreMeasurement(materialID MaterialID, scaleID DerivedID, reading float64, shoreType string) *ShoreMeasurement {
	return &ShoreMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Shore Measurement",
			Description: "Raw Shore durometer datapoint",
			Category:    CategoryMechanical,
		},
		HardnessScaleID:   scaleID,
		Reading:           reading,
		ShoreType:         shoreType,
		ReadingTimeS:      1.0,
		SampleThicknessMm: 6.0,
		TemperatureC:      23.0,
	}
}

// Kind implements Record.
func (ShoreMeasurement) Kind() EntityKind { return KindShoreMeasurement }

// AbstractionLevel implements Leveled.
func (ShoreMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// HardnessReading implements the hardness derivation input.
func (m *ShoreMeasurement) HardnessReading() float64 { return m.Reading }
