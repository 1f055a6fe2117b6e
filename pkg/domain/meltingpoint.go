package domain

// MeltingPointValue is the derived melting temperature of a crystalline or
// semi-crystalline material, taken from the endothermic peak of a DSC scan
// (ASTM D3418 peak convention).
type MeltingPointValue struct {
	Base
	PropertyMeta
	DerivedMeta
	// MeltingPointC is the reported melting temperature (peak by default).
	MeltingPointC float64 `json:"melting_point_c"`
	OnsetC        float64 `json:"onset_c"`
	PeakC         float64 `json:"peak_c"`
	// HeatOfFusionJg is the area under the melting endotherm.
	HeatOfFusionJg       float64 `json:"heat_of_fusion_j_g"`
	CrystallinityPercent float64 `json:"crystallinity_percent"`
	MeasurementMethod    string  `json:"measurement_method"`
	HeatingRateCPerMin   float64 `json:"heating_rate_c_per_min"`
}

// NewMeltingPointValue constructs a derived melting point record with the
// ASTM D3418 default scan rate.
func NewMeltingPointValue(materialID MaterialID) *MeltingPointValue {
	return &MeltingPointValue{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Melting Point Value",
			Description: "Derived melting temperature in Celsius",
			Category:    CategoryThermal,
		},
		MeasurementMethod:  "DSC",
		HeatingRateCPerMin: 10.0,
	}
}

// Kind implements Record.
func (MeltingPointValue) Kind() EntityKind { return KindMeltingPointValue }

// AbstractionLevel implements Leveled.
func (MeltingPointValue) AbstractionLevel() AbstractionLevel { return LevelDerived }

// ThermalScanPoint is a raw datapoint usable for melting point derivation.
type ThermalScanPoint interface {
	ScanTemperatureC() float64
	ScanHeatFlowMW() float64
}

// DeriveFromScan recomputes the melting point as the temperature of the
// strongest endothermic point in the scan. Points with a non-positive heat
// flow magnitude are skipped. An empty or all-invalid scan leaves the
// stored value unchanged and returns it.
func (v *MeltingPointValue) DeriveFromScan(points []ThermalScanPoint) float64 {
	peakFlow, peakTemp := 0.0, 0.0
	found := false
	for _, p := range points {
		flow := p.ScanHeatFlowMW()
		if flow <= 0 {
			continue
		}
		if !found || flow > peakFlow {
			peakFlow, peakTemp = flow, p.ScanTemperatureC()
			found = true
		}
	}
	if !found {
		return v.MeltingPointC
	}
	v.PeakC = peakTemp
	v.MeltingPointC = peakTemp
	return v.MeltingPointC
}

// DeriveCrystallinity computes the crystalline fraction from the measured
// heat of fusion against the 100% crystalline reference value for the
// polymer. A non-positive reference leaves the stored value unchanged.
func (v *MeltingPointValue) DeriveCrystallinity(referenceHeatOfFusionJg float64) float64 {
	if referenceHeatOfFusionJg <= 0 {
		return v.CrystallinityPercent
	}
	v.CrystallinityPercent = v.HeatOfFusionJg / referenceHeatOfFusionJg * 100
	return v.CrystallinityPercent
}

// DSCMeltingMeasurement is a single differential scanning calorimetry
// datapoint, the raw leaf of the melting point hierarchy.
type DSCMeltingMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// MeltingPointValueID soft-links the derived record this point contributes to.
	MeltingPointValueID DerivedID `json:"melting_point_value_id"`
	TemperatureC        float64   `json:"temperature_c"`
	// HeatFlowMW is the endothermic heat flow at this temperature.
	HeatFlowMW         float64 `json:"heat_flow_mw"`
	ElapsedS           float64 `json:"elapsed_s"`
	SampleMassMg       float64 `json:"sample_mass_mg"`
	PanType            string  `json:"pan_type"`
	Atmosphere         string  `json:"atmosphere"`
	PurgeFlowMlMin     float64 `json:"purge_flow_ml_min"`
	HeatingRateCPerMin float64 `json:"heating_rate_c_per_min"`
}

// NewDSCMeltingMeasurement constructs a raw DSC datapoint with the usual
// polymer scan defaults (10mg sample, aluminum pan, nitrogen purge).
func NewDSCMeltingMeasurement(materialID MaterialID, valueID DerivedID, temperatureC, heatFlowMW float64) *DSCMeltingMeasurement {
	return &DSCMeltingMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "DSC Melting Measurement",
			Description: "Raw DSC scan datapoint",
			Category:    CategoryThermal,
		},
		MeltingPointValueID: valueID,
		TemperatureC:        temperatureC,
		HeatFlowMW:          heatFlowMW,
		SampleMassMg:        10.0,
		PanType:             "aluminum",
		Atmosphere:          "nitrogen",
		PurgeFlowMlMin:      50.0,
		HeatingRateCPerMin:  10.0,
	}
}

// Kind implements Record.
func (DSCMeltingMeasurement) Kind() EntityKind { return KindDSCMeltingMeasurement }

// AbstractionLevel implements Leveled.
func (DSCMeltingMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// ScanTemperatureC implements the melting derivation input.
func (m *DSCMeltingMeasurement) ScanTemperatureC() float64 { return m.TemperatureC }

// ScanHeatFlowMW implements the melting derivation input.
func (m *DSCMeltingMeasurement) ScanHeatFlowMW() float64 { return m.HeatFlowMW }

// NormalizedHeatFlow returns the heat flow per milligram of sample, or 0
// when the sample mass is unknown.
func (m *DSCMeltingMeasurement) NormalizedHeatFlow() float64 {
	if m.SampleMassMg <= 0 {
		return 0
	}
	return m.HeatFlowMW / m.SampleMassMg
}
