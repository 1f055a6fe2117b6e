package domain

// MFIValue is the derived melt flow index in g/10min, computed by averaging
// the normalized rates of individual extrusion cuts (ASTM D1238 Procedure A).
type MFIValue struct {
	Base
	PropertyMeta
	DerivedMeta
	MFIGramsPer10Min float64 `json:"mfi_grams_per_10min"`
	// TestTemperatureC and TestLoadKg identify the standard condition the
	// value is reported at (e.g. 190°C / 2.16 kg for polyethylene).
	TestTemperatureC float64 `json:"test_temperature_c"`
	TestLoadKg       float64 `json:"test_load_kg"`
}

// NewMFIValue constructs a derived melt flow index record with the common
// 190°C / 2.16 kg condition.
func NewMFIValue(materialID MaterialID) *MFIValue {
	return &MFIValue{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "MFI Value",
			Description: "Derived melt flow index in g/10min",
			Category:    CategoryRheological,
		},
		TestTemperatureC: 190.0,
		TestLoadKg:       2.16,
	}
}

// Kind implements Record.
func (MFIValue) Kind() EntityKind { return KindMFIValue }

// AbstractionLevel implements Leveled.
func (MFIValue) AbstractionLevel() AbstractionLevel { return LevelDerived }

// ExtrusionCut is a raw datapoint usable for MFI derivation.
type ExtrusionCut interface {
	CutMassG() float64
	CutTimeS() float64
}

// DeriveFromCuts recomputes the MFI as the mean of each cut's normalized
// rate (mass/time * 600). Cuts with a non-positive mass or time are skipped;
// an empty or all-invalid input leaves the stored value unchanged and
// returns it.
func (v *MFIValue) DeriveFromCuts(cuts []ExtrusionCut) float64 {
	total, count := 0.0, 0
	for _, c := range cuts {
		if c.CutMassG() > 0 && c.CutTimeS() > 0 {
			total += ratePer10Min(c.CutMassG(), c.CutTimeS())
			count++
		}
	}
	if count == 0 {
		return v.MFIGramsPer10Min
	}
	v.MFIGramsPer10Min = total / float64(count)
	return v.MFIGramsPer10Min
}

// ratePer10Min normalizes an extrusion cut to grams per 10 minutes.
func ratePer10Min(massG, timeS float64) float64 {
	return massG / timeS * 600
}

// MFIMeasurement is a single timed extrusion cut from a melt indexer.
// Unlike the other raw datapoints it also carries its own locally derived
// rate, computed eagerly at construction from its own mass and time fields
// while still contributing to the parent MFIValue's aggregate.
type MFIMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// MFIValueID soft-links the derived record this cut contributes to.
	MFIValueID         DerivedID `json:"mfi_value_id"`
	ExtrusionTimeS     float64   `json:"extrusion_time_s"`
	ExtrudateMassG     float64   `json:"extrudate_mass_g"`
	PreheatTimeS       float64   `json:"preheat_time_s"`
	BarrelTemperatureC float64   `json:"barrel_temperature_c"`
	TestLoadKg         float64   `json:"test_load_kg"`
	DieDiameterMm      float64   `json:"die_diameter_mm"`
	DieLengthMm        float64   `json:"die_length_mm"`
	// RatePer10Min is this cut's own normalized rate, set at construction.
	RatePer10Min float64 `json:"rate_per_10min"`
}

// NewMFIMeasurement constructs a raw extrusion cut with the standardized die
// geometry (2.095 mm orifice, 8.0 mm length) and eagerly computes the cut's
// own g/10min rate when the time interval is positive.
func NewMFIMeasurement(materialID MaterialID, valueID DerivedID, massG, timeS float64) *MFIMeasurement {
	m := &MFIMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "MFI Measurement",
			Description: "Raw extrusion plastometer cut",
			Category:    CategoryRheological,
		},
		MFIValueID:         valueID,
		ExtrusionTimeS:     timeS,
		ExtrudateMassG:     massG,
		PreheatTimeS:       300.0,
		BarrelTemperatureC: 190.0,
		TestLoadKg:         2.16,
		DieDiameterMm:      2.095,
		DieLengthMm:        8.0,
	}
	if timeS > 0 {
		m.RatePer10Min = ratePer10Min(massG, timeS)
	}
	return m
}

// Kind implements Record.
func (MFIMeasurement) Kind() EntityKind { return KindMFIMeasurement }

// AbstractionLevel implements Leveled.
func (MFIMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// CutMassG implements the MFI derivation input.
func (m *MFIMeasurement) CutMassG() float64 { return m.ExtrudateMassG }

// CutTimeS implements the MFI derivation input.
func (m *MFIMeasurement) CutTimeS() float64 { return m.ExtrusionTimeS }
