package domain

// Stormer-to-Krebs conversion constants. The normalization pins every
// reading to the standard 200-revolution load per ASTM D562; the linear
// form KU = L*2.08 + 15.8 is the empirical fit for the standardized paddle
// geometry.
const (
	stormerReferenceRevolutions = 200.0
	krebsSlope                  = 2.08
	krebsIntercept              = 15.8
)

// KrebsViscosity is the derived viscosity value in Krebs Units (KU),
// computed from raw Stormer viscometer datapoints. Krebs Units are the
// standard reporting scale for paints, coatings, and other fluids where
// paddle viscometry applies.
type KrebsViscosity struct {
	Base
	PropertyMeta
	DerivedMeta
	ViscosityKU float64 `json:"viscosity_ku"`
}

// NewKrebsViscosity constructs a derived Krebs viscosity record for a material.
func NewKrebsViscosity(materialID MaterialID) *KrebsViscosity {
	return &KrebsViscosity{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Krebs Viscosity",
			Description: "Derived viscosity in Krebs Units (KU)",
			Category:    CategoryRheological,
		},
		DerivedMeta: DerivedMeta{TemperatureC: 25.0},
	}
}

// Kind implements Record.
func (KrebsViscosity) Kind() EntityKind { return KindKrebsViscosity }

// AbstractionLevel implements Leveled.
func (KrebsViscosity) AbstractionLevel() AbstractionLevel { return LevelDerived }

// StormerReading is a raw datapoint usable for Krebs derivation.
type StormerReading interface {
	StormerGrams() float64
	StormerRevolutions() float64
}

// DeriveFromStormer recomputes the KU value from raw Stormer readings.
// Each reading's load is normalized to 200 revolutions
// (grams * 200/revolutions), the normalized loads are averaged, and the
// average is mapped through the empirical KU line. Readings with a
// non-positive load or revolution count are skipped; an empty or all-invalid
// input leaves the stored value unchanged and returns it.
func (k *KrebsViscosity) DeriveFromStormer(readings []StormerReading) float64 {
	total, count := 0.0, 0
	for _, r := range readings {
		if r.StormerGrams() > 0 && r.StormerRevolutions() > 0 {
			total += r.StormerGrams() * (stormerReferenceRevolutions / r.StormerRevolutions())
			count++
		}
	}
	if count == 0 {
		return k.ViscosityKU
	}
	k.ViscosityKU = (total/float64(count))*krebsSlope + krebsIntercept
	return k.ViscosityKU
}

// StormerMeasurement is a single Stormer viscometer datapoint: the load in
// grams required to drive the paddle through a revolution count over a timed
// interval.
type StormerMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// KrebsViscosityID soft-links the derived record this reading contributes to.
	KrebsViscosityID DerivedID `json:"krebs_viscosity_id"`
	TimeS            float64   `json:"time_s"`
	Revolutions      float64   `json:"revolutions"`
	Grams            float64   `json:"grams"`
	TemperatureC     float64   `json:"temperature_c"`
}

// NewStormerMeasurement constructs a raw Stormer viscometer datapoint.
func NewStormerMeasurement(materialID MaterialID, krebsID DerivedID, grams, revolutions float64) *StormerMeasurement {
	return &StormerMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Stormer Viscosity",
			Description: "Raw Stormer viscometer datapoint",
			Category:    CategoryRheological,
		},
		KrebsViscosityID: krebsID,
		Grams:            grams,
		Revolutions:      revolutions,
		TemperatureC:     25.0,
	}
}

// Kind implements Record.
func (StormerMeasurement) Kind() EntityKind { return KindStormerMeasurement }

// AbstractionLevel implements Leveled.
func (StormerMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// StormerGrams implements the Krebs derivation input.
func (m *StormerMeasurement) StormerGrams() float64 { return m.Grams }

// StormerRevolutions implements the Krebs derivation input.
func (m *StormerMeasurement) StormerRevolutions() float64 { return m.Revolutions }
