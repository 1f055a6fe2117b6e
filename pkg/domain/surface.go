package domain

import "math"

// Owens-Wendt probe liquid constants in mN/m: total surface tension and its
// dispersive/polar split. Water and diiodomethane are the standard pairing
// per ISO 19403-2.
const (
	WaterSurfaceTension     = 72.8
	WaterDispersive         = 21.8
	WaterPolar              = 51.0
	DiiodomethaneTension    = 50.8
	DiiodomethaneDispersive = 50.8
	DiiodomethanePolar      = 0.0
)

// CriticalSurfaceTension is the derived solid surface energy in mN/m with
// its Owens-Wendt dispersive/polar split, computed from contact angle
// measurements against two probe liquids.
type CriticalSurfaceTension struct {
	Base
	PropertyMeta
	DerivedMeta
	SurfaceEnergyMNm  float64 `json:"surface_energy_mnm"`
	DispersiveMNm     float64 `json:"dispersive_mnm"`
	PolarMNm          float64 `json:"polar_mnm"`
	CalculationMethod string  `json:"calculation_method"`
}

// NewCriticalSurfaceTension constructs a derived surface energy record.
func NewCriticalSurfaceTension(materialID MaterialID) *CriticalSurfaceTension {
	return &CriticalSurfaceTension{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Critical Surface Tension",
			Description: "Derived surface energy in mN/m",
			Category:    CategorySurface,
		},
		DerivedMeta:       DerivedMeta{TemperatureC: 23.0},
		CalculationMethod: "owens_wendt",
	}
}

// Kind implements Record.
func (CriticalSurfaceTension) Kind() EntityKind { return KindCriticalSurfaceTension }

// AbstractionLevel implements Leveled.
func (CriticalSurfaceTension) AbstractionLevel() AbstractionLevel { return LevelDerived }

// DeriveOwensWendt solves the two-liquid Owens-Wendt system analytically for
// the dispersive and polar surface energy components and stores their sum.
// The diiodomethane angle pins the dispersive component (its polar part is
// zero); the water angle then yields the polar component. Angles are in
// degrees. Returns total, dispersive, polar in mN/m.
func (c *CriticalSurfaceTension) DeriveOwensWendt(waterAngleDeg, diiodomethaneAngleDeg float64) (total, dispersive, polar float64) {
	thetaW := waterAngleDeg * math.Pi / 180
	thetaD := diiodomethaneAngleDeg * math.Pi / 180

	dispersive = math.Pow(DiiodomethaneTension*(1+math.Cos(thetaD))/(2*math.Sqrt(DiiodomethaneDispersive)), 2)
	numerator := WaterSurfaceTension*(1+math.Cos(thetaW)) - 2*math.Sqrt(dispersive*WaterDispersive)
	polar = math.Pow(numerator/(2*math.Sqrt(WaterPolar)), 2)

	c.DispersiveMNm = dispersive
	c.PolarMNm = polar
	c.SurfaceEnergyMNm = dispersive + polar
	c.CalculationMethod = "owens_wendt"
	return c.SurfaceEnergyMNm, dispersive, polar
}

// ContactAngleMeasurement is a single sessile drop contact angle datapoint
// against a named probe liquid.
type ContactAngleMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// SurfaceTensionID soft-links the derived record this reading contributes to.
	SurfaceTensionID DerivedID `json:"surface_tension_id"`
	ProbeLiquid      string    `json:"probe_liquid"`
	ContactAngleDeg  float64   `json:"contact_angle_deg"`
	LeftAngleDeg     float64   `json:"left_angle_deg"`
	RightAngleDeg    float64   `json:"right_angle_deg"`
	DropVolumeUl     float64   `json:"drop_volume_ul"`
	TemperatureC     float64   `json:"temperature_c"`
}

// NewContactAngleMeasurement constructs a raw contact angle datapoint.
func NewContactAngleMeasurement(materialID MaterialID, derivedID DerivedID, probeLiquid string, angleDeg float64) *ContactAngleMeasurement {
	return &ContactAngleMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Contact Angle Measurement",
			Description: "Raw sessile drop contact angle datapoint",
			Category:    CategorySurface,
		},
		SurfaceTensionID: derivedID,
		ProbeLiquid:      probeLiquid,
		ContactAngleDeg:  angleDeg,
		TemperatureC:     23.0,
	}
}

// Kind implements Record.
func (ContactAngleMeasurement) Kind() EntityKind { return KindContactAngleMeasurement }

// AbstractionLevel implements Leveled.
func (ContactAngleMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// AverageLeftRight recomputes the contact angle from separate left and right
// edge fits when both are present; otherwise the stored angle is returned
// unchanged.
func (m *ContactAngleMeasurement) AverageLeftRight() float64 {
	if m.LeftAngleDeg > 0 && m.RightAngleDeg > 0 {
		m.ContactAngleDeg = (m.LeftAngleDeg + m.RightAngleDeg) / 2
	}
	return m.ContactAngleDeg
}

// SurfaceTensionValue is the derived liquid surface tension in mN/m,
// computed as the mean of valid raw tensiometer readings.
type SurfaceTensionValue struct {
	Base
	PropertyMeta
	DerivedMeta
	SurfaceTensionMNm     float64 `json:"surface_tension_mnm"`
	InterfacialTensionMNm float64 `json:"interfacial_tension_mnm"`
	SecondPhase           string  `json:"second_phase"`
	MeasurementMethod     string  `json:"measurement_method"`
}

// NewSurfaceTensionValue constructs a derived liquid surface tension record
// against air.
func NewSurfaceTensionValue(materialID MaterialID) *SurfaceTensionValue {
	return &SurfaceTensionValue{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Surface Tension Value",
			Description: "Derived surface tension in mN/m",
			Category:    CategorySurface,
		},
		DerivedMeta: DerivedMeta{TemperatureC: 20.0},
		SecondPhase: "air",
	}
}

// Kind implements Record.
func (SurfaceTensionValue) Kind() EntityKind { return KindSurfaceTensionValue }

// AbstractionLevel implements Leveled.
func (SurfaceTensionValue) AbstractionLevel() AbstractionLevel { return LevelDerived }

// TensionReading is a raw datapoint usable for surface tension derivation.
type TensionReading interface {
	SurfaceTensionMNmReading() float64
}

// DeriveFromReadings recomputes the surface tension as the mean of all valid
// readings. Readings with a non-positive value are skipped; an empty or
// all-invalid input leaves the stored value unchanged and returns it.
func (s *SurfaceTensionValue) DeriveFromReadings(readings []TensionReading) float64 {
	total, count := 0.0, 0
	for _, r := range readings {
		if v := r.SurfaceTensionMNmReading(); v > 0 {
			total += v
			count++
		}
	}
	if count == 0 {
		return s.SurfaceTensionMNm
	}
	s.SurfaceTensionMNm = total / float64(count)
	return s.SurfaceTensionMNm
}

// WilhelmyMeasurement is a single Wilhelmy plate tensiometer datapoint.
type WilhelmyMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// SurfaceTensionValueID soft-links the derived record this reading
	// contributes to.
	SurfaceTensionValueID DerivedID `json:"surface_tension_value_id"`
	TensionMNm            float64   `json:"tension_mnm"`
	PlatePerimeterMm      float64   `json:"plate_perimeter_mm"`
	ForceMN               float64   `json:"force_mn"`
	TemperatureC          float64   `json:"temperature_c"`
}

// NewWilhelmyMeasurement constructs a raw Wilhelmy plate datapoint.
func NewWilhelmyMeasurement(materialID MaterialID, valueID DerivedID, tensionMNm float64) *WilhelmyMeasurement {
	return &WilhelmyMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Wilhelmy Measurement",
			Description: "Raw Wilhelmy plate datapoint",
			Category:    CategorySurface,
		},
		SurfaceTensionValueID: valueID,
		TensionMNm:            tensionMNm,
		TemperatureC:          20.0,
	}
}

// Kind implements Record.
func (WilhelmyMeasurement) Kind() EntityKind { return KindWilhelmyMeasurement }

// AbstractionLevel implements Leveled.
func (WilhelmyMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// SurfaceTensionMNmReading implements the tension derivation input.
func (m *WilhelmyMeasurement) SurfaceTensionMNmReading() float64 { return m.TensionMNm }
