package domain

import "math"

// StorageModulus is the derived elastic (storage) modulus G' of a material
// under oscillatory load, averaged over DMA or rheometer sweeps taken at
// the reference frequency.
type StorageModulus struct {
	Base
	PropertyMeta
	DerivedMeta
	StorageModulusPa float64 `json:"storage_modulus_pa"`
	LossModulusPa    float64 `json:"loss_modulus_pa"`
	// LossFactor is tan(delta) = G''/G'.
	LossFactor  float64 `json:"loss_factor"`
	FrequencyHz float64 `json:"frequency_hz"`
}

// NewStorageModulus constructs a derived storage modulus record at the
// conventional 1 Hz reference frequency.
func NewStorageModulus(materialID MaterialID) *StorageModulus {
	return &StorageModulus{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Storage Modulus",
			Description: "Derived storage modulus G' in Pascals",
			Category:    CategoryRheological,
		},
		DerivedMeta: DerivedMeta{TemperatureC: 25.0},
		FrequencyHz: 1.0,
	}
}

// Kind implements Record.
func (StorageModulus) Kind() EntityKind { return KindStorageModulus }

// AbstractionLevel implements Leveled.
func (StorageModulus) AbstractionLevel() AbstractionLevel { return LevelDerived }

// ModulusReading is a raw datapoint usable for storage modulus derivation.
type ModulusReading interface {
	StorageModulusPaReading() float64
	LossModulusPaReading() float64
}

// DeriveFromReadings recomputes G' as the mean of all valid readings, and
// G'' and tan(delta) alongside it. Readings with a non-positive storage
// modulus are skipped. An empty or all-invalid input leaves the stored
// values unchanged and returns the stored G'.
func (s *StorageModulus) DeriveFromReadings(readings []ModulusReading) float64 {
	storageSum, lossSum := 0.0, 0.0
	count := 0
	for _, r := range readings {
		storage := r.StorageModulusPaReading()
		if storage <= 0 {
			continue
		}
		storageSum += storage
		lossSum += r.LossModulusPaReading()
		count++
	}
	if count == 0 {
		return s.StorageModulusPa
	}
	s.StorageModulusPa = storageSum / float64(count)
	s.LossModulusPa = lossSum / float64(count)
	s.LossFactor = s.LossModulusPa / s.StorageModulusPa
	return s.StorageModulusPa
}

// ComplexModulusPa returns the complex modulus magnitude |G*|.
func (s *StorageModulus) ComplexModulusPa() float64 {
	return math.Sqrt(s.StorageModulusPa*s.StorageModulusPa + s.LossModulusPa*s.LossModulusPa)
}

// DeriveLossFactor recomputes tan(delta) from the stored moduli. A
// non-positive G' leaves the stored factor unchanged.
func (s *StorageModulus) DeriveLossFactor() float64 {
	if s.StorageModulusPa > 0 {
		s.LossFactor = s.LossModulusPa / s.StorageModulusPa
	}
	return s.LossFactor
}

// DMAMeasurement is a single dynamic mechanical analysis sweep point, a raw
// leaf of the storage modulus hierarchy.
type DMAMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// StorageModulusID soft-links the derived record this point contributes to.
	StorageModulusID  DerivedID `json:"storage_modulus_id"`
	StorageModulusPa  float64   `json:"storage_modulus_pa"`
	LossModulusPa     float64   `json:"loss_modulus_pa"`
	StrainPercent     float64   `json:"strain_percent"`
	StressPa          float64   `json:"stress_pa"`
	PhaseAngleDeg     float64   `json:"phase_angle_deg"`
	FrequencyHz       float64   `json:"frequency_hz"`
	SampleLengthMm    float64   `json:"sample_length_mm"`
	SampleWidthMm     float64   `json:"sample_width_mm"`
	SampleThicknessMm float64   `json:"sample_thickness_mm"`
	ClampType         string    `json:"clamp_type"`
	TemperatureC      float64   `json:"temperature_c"`
}

// NewDMAMeasurement constructs a raw DMA datapoint at the conventional
// reference conditions (1 Hz, 25°C).
func NewDMAMeasurement(materialID MaterialID, modulusID DerivedID, storagePa, lossPa float64) *DMAMeasurement {
	return &DMAMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "DMA Measurement",
			Description: "Raw dynamic mechanical analysis datapoint",
			Category:    CategoryRheological,
		},
		StorageModulusID: modulusID,
		StorageModulusPa: storagePa,
		LossModulusPa:    lossPa,
		FrequencyHz:      1.0,
		TemperatureC:     25.0,
	}
}

// Kind implements Record.
func (DMAMeasurement) Kind() EntityKind { return KindDMAMeasurement }

// AbstractionLevel implements Leveled.
func (DMAMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// StorageModulusPaReading implements the modulus derivation input.
func (m *DMAMeasurement) StorageModulusPaReading() float64 { return m.StorageModulusPa }

// LossModulusPaReading implements the modulus derivation input.
func (m *DMAMeasurement) LossModulusPaReading() float64 { return m.LossModulusPa }

// TanDelta returns the point's loss factor G''/G', or 0 when G' is unset.
func (m *DMAMeasurement) TanDelta() float64 {
	if m.StorageModulusPa <= 0 {
		return 0
	}
	return m.LossModulusPa / m.StorageModulusPa
}

// RheometerMeasurement is a single oscillatory rheometer datapoint, a raw
// leaf of the storage modulus hierarchy for melts and pastes.
type RheometerMeasurement struct {
	Base
	PropertyMeta
	MeasurementMeta
	// StorageModulusID soft-links the derived record this point contributes to.
	StorageModulusID DerivedID `json:"storage_modulus_id"`
	StorageModulusPa float64   `json:"storage_modulus_pa"`
	LossModulusPa    float64   `json:"loss_modulus_pa"`
	// Geometry is the fixture (parallel_plate, cone_plate, couette).
	Geometry      string  `json:"geometry"`
	GapMm         float64 `json:"gap_mm"`
	StrainPercent float64 `json:"strain_percent"`
	ShearRate     float64 `json:"shear_rate"`
	TorqueUNm     float64 `json:"torque_u_nm"`
	NormalForceN  float64 `json:"normal_force_n"`
	FrequencyHz   float64 `json:"frequency_hz"`
	TemperatureC  float64 `json:"temperature_c"`
}

// NewRheometerMeasurement constructs a raw rheometer datapoint with a
// parallel plate fixture at 1 Hz.
func NewRheometerMeasurement(materialID MaterialID, modulusID DerivedID, storagePa, lossPa float64) *RheometerMeasurement {
	return &RheometerMeasurement{
		PropertyMeta: PropertyMeta{
			MaterialID:  materialID,
			Name:        "Rheometer Measurement",
			Description: "Raw oscillatory rheometer datapoint",
			Category:    CategoryRheological,
		},
		StorageModulusID: modulusID,
		StorageModulusPa: storagePa,
		LossModulusPa:    lossPa,
		Geometry:         "parallel_plate",
		GapMm:            1.0,
		FrequencyHz:      1.0,
		TemperatureC:     25.0,
	}
}

// Kind implements Record.
func (RheometerMeasurement) Kind() EntityKind { return KindRheometerMeasurement }

// AbstractionLevel implements Leveled.
func (RheometerMeasurement) AbstractionLevel() AbstractionLevel { return LevelMeasurement }

// StorageModulusPaReading implements the modulus derivation input.
func (m *RheometerMeasurement) StorageModulusPaReading() float64 { return m.StorageModulusPa }

// LossModulusPaReading implements the modulus derivation input.
func (m *RheometerMeasurement) LossModulusPaReading() float64 { return m.LossModulusPa }
