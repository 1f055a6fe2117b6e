package domain

import "sort"

// CoefficientOfThermalExpansion is the derived mean CTE in ppm/°C over a
// temperature range, computed from the two endpoint TMA datapoints (lowest
// and highest temperature, per ASTM E831 mean-CTE reporting).
type CoefficientOfThermalExpansion struct {
	Base
	PropertyMeta
	DerivedMeta
	CTEPpmPerC            float64 `json:"cte_ppm_per_c"`
	TemperatureRangeLowC  float64 `json:"temperature_range_low_c"`
	TemperatureRangeHighC float64 `json:"temperature_range_high_c"`
	// ExpansionType is linear or volumetric; Direction distinguishes axes for
	// anisotropic samples.
	ExpansionType      string  `json:"expansion_type"`
	Direction          string  `json:"direction"`
	MeasurementMethod  string  `json:"measurement_method"`
	HeatingRateCPerMin float64 `json:"heating_rate_c_per_min"`
}

// NewCoefficientOfThermalExpansion constructs a derived CTE record with TMA
// defaults (linear, isotropic, 5°C/min).
func NewCoefficientOfThermalExpansion(materialID MaterialID) *CoefficientOfThermalExpansion {
	return &CoefficientOfThermalExpansion{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Coefficient of Thermal Expansion",
			Description: "Derived CTE in ppm/°C",
			Category:    CategoryThermal,
		},
		TemperatureRangeLowC:  25.0,
		TemperatureRangeHighC: 100.0,
		ExpansionType:         "linear",
		Direction:             "isotropic",
		MeasurementMethod:     "tma",
		HeatingRateCPerMin:    5.0,
	}
}

// Kind implements Record.
func (CoefficientOfThermalExpansion) Kind() EntityKind { return KindCoefficientOfThermalExpansion }

// AbstractionLevel implements Leveled.
func (CoefficientOfThermalExpansion) AbstractionLevel() AbstractionLevel { return LevelDerived }

// TMAReading is a raw datapoint usable for CTE derivation.
type TMAReading interface {
	TMATemperatureC() float64
	TMADimensionChangeMicron() float64
}

// DeriveFromReadings recomputes the mean CTE from TMA datapoints. Readings
// are sorted by temperature; the slope between the first and last point
// yields CTE = (Δμm / (L0_mm * 1e3)) / ΔT * 1e6 in ppm/°C, and the derived
// record's temperature range is updated to the endpoints. Fewer than two
// readings, a non-positive original length, or a non-positive temperature
// span leaves the stored value unchanged and returns it. Sequence order of
// the input is irrelevant; only temperature endpoints matter.
func (c *CoefficientOfThermalExpansion) DeriveFromReadings(readings []TMAReading, originalLengthMm float64) float64 {
	if len(readings) < 2 || originalLengthMm <= 0 {
		return c.CTEPpmPerC
	}
	sorted := make([]TMAReading, len(readings))
	copy(sorted, readings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TMATemperatureC() < sorted[j].TMATemperatureC()
	})
	first, last := sorted[0], sorted[len(sorted)-1]
	deltaT := last.TMATemperatureC() - first.TMATemperatureC()
	if deltaT <= 0 {
		return c.CTEPpmPerC
	}
	deltaL := last.TMADimensionChangeMicron() - first.TMADimensionChangeMicron()
	c.CTEPpmPerC = deltaL / (originalLengthMm * 1e3) / deltaT * 1e6
	c.TemperatureRangeLowC = first.TMATemperatureC()
	c.TemperatureRangeHighC = last.TMATemperatureC()
	return c.CTEPpmPerC
}

// TMAMeasurement is a single thermomechanical analysis datapoint: the probe
// displacement of a sample at a given temperature.
type TMAMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// CTEID soft-links the derived record this reading contributes to.
	CTEID                 DerivedID `json:"cte_id"`
	TemperatureC          float64   `json:"temperature_c"`
	DimensionChangeMicron float64   `json:"dimension_change_micron"`
	OriginalLengthMm      float64   `json:"original_length_mm"`
	ProbeForceMN          float64   `json:"probe_force_mn"`
}

// NewTMAMeasurement constructs a raw TMA datapoint.
func NewTMAMeasurement(materialID MaterialID, cteID DerivedID, temperatureC, dimensionChangeMicron float64) *TMAMeasurement {
	return &TMAMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "TMA Measurement",
			Description: "Raw thermomechanical analysis datapoint",
			Category:    CategoryThermal,
		},
		CTEID:                 cteID,
		TemperatureC:          temperatureC,
		DimensionChangeMicron: dimensionChangeMicron,
	}
}

// Kind implements Record.
func (TMAMeasurement) Kind() EntityKind { return KindTMAMeasurement }

// AbstractionLevel implements Leveled.
func (TMAMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// TMATemperatureC implements the CTE derivation input.
func (m *TMAMeasurement) TMATemperatureC() float64 { return m.TemperatureC }

// TMADimensionChangeMicron implements the CTE derivation input.
func (m *TMAMeasurement) TMADimensionChangeMicron() float64 { return m.DimensionChangeMicron }

// StrainPercent returns the engineering strain of the datapoint as a
// percentage of the original length, or zero when the length is missing.
func (m *TMAMeasurement) StrainPercent() float64 {
	if m.OriginalLengthMm <= 0 {
		return 0
	}
	return m.DimensionChangeMicron / (m.OriginalLengthMm * 1e3) * 100
}
