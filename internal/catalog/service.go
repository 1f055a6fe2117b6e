package catalog

import (
	"context"
	"fmt"
	"time"

	"materialcore/pkg/domain"
)

// Clock supplies the service's notion of now.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// ServiceOption customizes service construction.
type ServiceOption func(*Service)

// WithLogger overrides the no-op default logger.
func WithLogger(logger Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsRecorder attaches a metrics recorder to every operation.
func WithMetricsRecorder(metrics MetricsRecorder) ServiceOption {
	return func(s *Service) { s.metrics = metrics }
}

// WithTracer attaches a tracer to every operation.
func WithTracer(tracer Tracer) ServiceOption {
	return func(s *Service) { s.tracer = tracer }
}

// WithClock overrides the wall clock, mainly for tests.
func WithClock(clock Clock) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithRegistry overrides the default entity registry.
func WithRegistry(registry *Registry) ServiceOption {
	return func(s *Service) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// Service exposes transactional catalogue operations over a persistent
// store. Records of every registered kind flow through the generic CRUD
// surface; derived property values are recomputed on demand from their raw
// measurements and never served from a cache the store does not hold.
type Service struct {
	store    domain.PersistentStore
	registry *Registry
	logger   Logger
	metrics  MetricsRecorder
	tracer   Tracer
	clock    Clock
}

// NewService constructs a service backed by the supplied store.
func NewService(store domain.PersistentStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:    store,
		registry: DefaultRegistry(),
		logger:   noopLogger{},
		clock:    ClockFunc(time.Now),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying storage implementation.
func (s *Service) Store() domain.PersistentStore {
	return s.store
}

// Registry returns the entity registry the service validates kinds against.
func (s *Service) Registry() *Registry {
	return s.registry
}

// run executes fn in a transaction with logging, metrics and tracing around it.
func (s *Service) run(ctx context.Context, operation string, fn func(tx domain.Transaction) error) error {
	start := s.clock.Now()
	var span TraceSpan
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operation)
	}
	err := s.store.RunInTransaction(ctx, fn)
	duration := s.clock.Now().Sub(start)
	if s.metrics != nil {
		s.metrics.Observe(ctx, operation, err == nil, duration)
	}
	if span != nil {
		span.End(err)
	}
	if err != nil {
		s.logger.Error("operation failed", "operation", operation, "error", err)
	} else {
		s.logger.Debug("operation completed", "operation", operation, "duration", duration)
	}
	return err
}

// CreateRecord persists a new record of any registered kind. The store mints
// an id when the record carries none.
func (s *Service) CreateRecord(ctx context.Context, rec domain.Record) (domain.Record, error) {
	if rec == nil {
		return nil, fmt.Errorf("create: nil record")
	}
	if !s.registry.Contains(rec.Kind()) {
		return nil, UnknownKindError{Kind: rec.Kind()}
	}
	var created domain.Record
	err := s.run(ctx, "create_"+string(rec.Kind()), func(tx domain.Transaction) error {
		var err error
		created, err = tx.Create(rec)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateRecord applies the mutator to the stored record and persists the result.
func (s *Service) UpdateRecord(ctx context.Context, kind domain.EntityKind, id string, mutate func(domain.Record) error) (domain.Record, error) {
	if !s.registry.Contains(kind) {
		return nil, UnknownKindError{Kind: kind}
	}
	var updated domain.Record
	err := s.run(ctx, "update_"+string(kind), func(tx domain.Transaction) error {
		var err error
		updated, err = tx.Update(kind, id, mutate)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteRecord removes the record with the given kind and id.
func (s *Service) DeleteRecord(ctx context.Context, kind domain.EntityKind, id string) error {
	if !s.registry.Contains(kind) {
		return UnknownKindError{Kind: kind}
	}
	return s.run(ctx, "delete_"+string(kind), func(tx domain.Transaction) error {
		return tx.Delete(kind, id)
	})
}

// GetRecord fetches a record by kind and id.
func (s *Service) GetRecord(kind domain.EntityKind, id string) (domain.Record, bool, error) {
	if !s.registry.Contains(kind) {
		return nil, false, UnknownKindError{Kind: kind}
	}
	rec, ok := s.store.Get(kind, id)
	return rec, ok, nil
}

// ListRecords returns all records of a kind ordered by id.
func (s *Service) ListRecords(kind domain.EntityKind) ([]domain.Record, error) {
	if !s.registry.Contains(kind) {
		return nil, UnknownKindError{Kind: kind}
	}
	return s.store.List(kind), nil
}

// Probe liquid names recognized when pairing contact angles for the
// Owens-Wendt surface energy derivation.
const (
	probeWater         = "water"
	probeDiiodomethane = "diiodomethane"
)

// RecomputeHardness re-derives a hardness scale value from all indentation
// readings linked to it and persists the result. Missing or invalid readings
// leave the stored value in place.
func (s *Service) RecomputeHardness(ctx context.Context, id domain.DerivedID) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_hardness", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindHardnessScale, string(id), func(rec domain.Record) error {
			scale, ok := rec.(*domain.HardnessScale)
			if !ok {
				return fmt.Errorf("recompute hardness: unexpected record type %T", rec)
			}
			var readings []domain.HardnessReading
			for _, raw := range tx.Snapshot().List(domain.KindShoreMeasurement) {
				if m, ok := raw.(*domain.ShoreMeasurement); ok && m.HardnessScaleID == id {
					readings = append(readings, m)
				}
			}
			value = scale.DeriveFromReadings(readings)
			return nil
		})
		return err
	})
	return value, err
}

// RecomputeKrebsViscosity re-derives a Krebs viscosity value from all
// Stormer readings linked to it and persists the result.
func (s *Service) RecomputeKrebsViscosity(ctx context.Context, id domain.DerivedID) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_krebs_viscosity", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindKrebsViscosity, string(id), func(rec domain.Record) error {
			krebs, ok := rec.(*domain.KrebsViscosity)
			if !ok {
				return fmt.Errorf("recompute krebs viscosity: unexpected record type %T", rec)
			}
			var readings []domain.StormerReading
			for _, raw := range tx.Snapshot().List(domain.KindStormerMeasurement) {
				if m, ok := raw.(*domain.StormerMeasurement); ok && m.KrebsViscosityID == id {
					readings = append(readings, m)
				}
			}
			value = krebs.DeriveFromStormer(readings)
			return nil
		})
		return err
	})
	return value, err
}

// RecomputeTensileStrength re-derives a UTS value from all tensile readings
// linked to it. When crossSectionAreaMm2 is non-positive, the area is taken
// from the first linked measurement with recorded specimen dimensions.
func (s *Service) RecomputeTensileStrength(ctx context.Context, id domain.DerivedID, crossSectionAreaMm2 float64) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_tensile_strength", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindUltimateTensileStrength, string(id), func(rec domain.Record) error {
			uts, ok := rec.(*domain.UltimateTensileStrength)
			if !ok {
				return fmt.Errorf("recompute tensile strength: unexpected record type %T", rec)
			}
			area := crossSectionAreaMm2
			var readings []domain.TensileReading
			for _, raw := range tx.Snapshot().List(domain.KindTensileMeasurement) {
				m, ok := raw.(*domain.TensileMeasurement)
				if !ok || m.UTSID != id {
					continue
				}
				if area <= 0 {
					if a := m.SpecimenWidthMm * m.SpecimenThicknessMm; a > 0 {
						area = a
					}
				}
				readings = append(readings, m)
			}
			value = uts.DeriveFromReadings(readings, area)
			return nil
		})
		return err
	})
	return value, err
}

// RecomputeMeltFlowIndex re-derives an MFI value from all extrusion cuts
// linked to it and persists the result.
func (s *Service) RecomputeMeltFlowIndex(ctx context.Context, id domain.DerivedID) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_melt_flow_index", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindMFIValue, string(id), func(rec domain.Record) error {
			mfi, ok := rec.(*domain.MFIValue)
			if !ok {
				return fmt.Errorf("recompute melt flow index: unexpected record type %T", rec)
			}
			var cuts []domain.ExtrusionCut
			for _, raw := range tx.Snapshot().List(domain.KindMFIMeasurement) {
				if m, ok := raw.(*domain.MFIMeasurement); ok && m.MFIValueID == id {
					cuts = append(cuts, m)
				}
			}
			value = mfi.DeriveFromCuts(cuts)
			return nil
		})
		return err
	})
	return value, err
}

// RecomputeSpecificGravity re-derives a specific gravity value from all
// pycnometer, hydrometer and density meter readings linked to it.
func (s *Service) RecomputeSpecificGravity(ctx context.Context, id domain.DerivedID) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_specific_gravity", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindReferentialSpecificGravity, string(id), func(rec domain.Record) error {
			gravity, ok := rec.(*domain.ReferentialSpecificGravity)
			if !ok {
				return fmt.Errorf("recompute specific gravity: unexpected record type %T", rec)
			}
			view := tx.Snapshot()
			var readings []domain.GravityReading
			for _, raw := range view.List(domain.KindPycnometerMeasurement) {
				if m, ok := raw.(*domain.PycnometerMeasurement); ok && m.GravityID == id {
					readings = append(readings, m)
				}
			}
			for _, raw := range view.List(domain.KindHydrometerMeasurement) {
				if m, ok := raw.(*domain.HydrometerMeasurement); ok && m.GravityID == id {
					readings = append(readings, m)
				}
			}
			for _, raw := range view.List(domain.KindDensityMeterMeasurement) {
				if m, ok := raw.(*domain.DensityMeterMeasurement); ok && m.GravityID == id {
					readings = append(readings, m)
				}
			}
			value = gravity.DeriveFromReadings(readings)
			return nil
		})
		return err
	})
	return value, err
}

// RecomputeSurfaceTension re-derives a liquid surface tension value from all
// tensiometer readings linked to it.
func (s *Service) RecomputeSurfaceTension(ctx context.Context, id domain.DerivedID) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_surface_tension", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindSurfaceTensionValue, string(id), func(rec domain.Record) error {
			tension, ok := rec.(*domain.SurfaceTensionValue)
			if !ok {
				return fmt.Errorf("recompute surface tension: unexpected record type %T", rec)
			}
			var readings []domain.TensionReading
			for _, raw := range tx.Snapshot().List(domain.KindWilhelmyMeasurement) {
				if m, ok := raw.(*domain.WilhelmyMeasurement); ok && m.SurfaceTensionValueID == id {
					readings = append(readings, m)
				}
			}
			value = tension.DeriveFromReadings(readings)
			return nil
		})
		return err
	})
	return value, err
}

// RecomputeSurfaceEnergy re-derives a solid surface energy value from the
// contact angle measurements linked to it. Angles are averaged per probe
// liquid; without at least one valid angle for both water and diiodomethane
// the stored value is left in place.
func (s *Service) RecomputeSurfaceEnergy(ctx context.Context, id domain.DerivedID) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_surface_energy", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindCriticalSurfaceTension, string(id), func(rec domain.Record) error {
			energy, ok := rec.(*domain.CriticalSurfaceTension)
			if !ok {
				return fmt.Errorf("recompute surface energy: unexpected record type %T", rec)
			}
			var waterSum, diiodoSum float64
			var waterN, diiodoN int
			for _, raw := range tx.Snapshot().List(domain.KindContactAngleMeasurement) {
				m, ok := raw.(*domain.ContactAngleMeasurement)
				if !ok || m.SurfaceTensionID != id {
					continue
				}
				// 0 degrees means complete wetting and is a valid reading;
				// only negative angles are instrument noise.
				angle := m.AverageLeftRight()
				if angle < 0 {
					continue
				}
				switch m.ProbeLiquid {
				case probeWater:
					waterSum += angle
					waterN++
				case probeDiiodomethane:
					diiodoSum += angle
					diiodoN++
				}
			}
			if waterN == 0 || diiodoN == 0 {
				value = energy.SurfaceEnergyMNm
				return nil
			}
			value, _, _ = energy.DeriveOwensWendt(waterSum/float64(waterN), diiodoSum/float64(diiodoN))
			return nil
		})
		return err
	})
	return value, err
}

// RecomputeThermalExpansion re-derives a mean CTE value from the TMA
// datapoints linked to it. The original sample length comes from the first
// linked measurement that records one; without it the stored value is left
// in place.
func (s *Service) RecomputeThermalExpansion(ctx context.Context, id domain.DerivedID) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_thermal_expansion", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindCoefficientOfThermalExpansion, string(id), func(rec domain.Record) error {
			cte, ok := rec.(*domain.CoefficientOfThermalExpansion)
			if !ok {
				return fmt.Errorf("recompute thermal expansion: unexpected record type %T", rec)
			}
			var originalLengthMm float64
			var readings []domain.TMAReading
			for _, raw := range tx.Snapshot().List(domain.KindTMAMeasurement) {
				m, ok := raw.(*domain.TMAMeasurement)
				if !ok || m.CTEID != id {
					continue
				}
				if originalLengthMm <= 0 && m.OriginalLengthMm > 0 {
					originalLengthMm = m.OriginalLengthMm
				}
				readings = append(readings, m)
			}
			value = cte.DeriveFromReadings(readings, originalLengthMm)
			return nil
		})
		return err
	})
	return value, err
}

// RecomputeMeltingPoint re-derives a melting point value from the DSC scan
// points linked to it and persists the result.
func (s *Service) RecomputeMeltingPoint(ctx context.Context, id domain.DerivedID) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_melting_point", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindMeltingPointValue, string(id), func(rec domain.Record) error {
			melting, ok := rec.(*domain.MeltingPointValue)
			if !ok {
				return fmt.Errorf("recompute melting point: unexpected record type %T", rec)
			}
			var points []domain.ThermalScanPoint
			for _, raw := range tx.Snapshot().List(domain.KindDSCMeltingMeasurement) {
				if m, ok := raw.(*domain.DSCMeltingMeasurement); ok && m.MeltingPointValueID == id {
					points = append(points, m)
				}
			}
			value = melting.DeriveFromScan(points)
			return nil
		})
		return err
	})
	return value, err
}

// RecomputeStorageModulus re-derives a storage modulus value from all DMA
// and rheometer sweep points linked to it.
func (s *Service) RecomputeStorageModulus(ctx context.Context, id domain.DerivedID) (float64, error) {
	var value float64
	err := s.run(ctx, "recompute_storage_modulus", func(tx domain.Transaction) error {
		_, err := tx.Update(domain.KindStorageModulus, string(id), func(rec domain.Record) error {
			modulus, ok := rec.(*domain.StorageModulus)
			if !ok {
				return fmt.Errorf("recompute storage modulus: unexpected record type %T", rec)
			}
			view := tx.Snapshot()
			var readings []domain.ModulusReading
			for _, raw := range view.List(domain.KindDMAMeasurement) {
				if m, ok := raw.(*domain.DMAMeasurement); ok && m.StorageModulusID == id {
					readings = append(readings, m)
				}
			}
			for _, raw := range view.List(domain.KindRheometerMeasurement) {
				if m, ok := raw.(*domain.RheometerMeasurement); ok && m.StorageModulusID == id {
					readings = append(readings, m)
				}
			}
			value = modulus.DeriveFromReadings(readings)
			return nil
		})
		return err
	})
	return value, err
}
