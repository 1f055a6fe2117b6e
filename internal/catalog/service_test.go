package catalog

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"materialcore/internal/infra/persistence/memory"
	"materialcore/pkg/domain"
)

func newTestService(t *testing.T, opts ...ServiceOption) *Service {
	t.Helper()
	store := memory.NewStore(DefaultRegistry().Schema())
	return NewService(store, opts...)
}

func createRecord[T domain.Record](t *testing.T, svc *Service, rec T) T {
	t.Helper()
	created, err := svc.CreateRecord(context.Background(), rec)
	if err != nil {
		t.Fatalf("create %s: %v", rec.Kind(), err)
	}
	return created.(T)
}

func TestServiceCreateMintsIDAndStamps(t *testing.T) {
	svc := newTestService(t)
	created := createRecord(t, svc, &domain.Material{Name: "PLA Filament"})
	if created.RecordID() == "" {
		t.Fatalf("expected minted id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
	got, ok, err := svc.GetRecord(domain.KindMaterial, created.RecordID())
	if err != nil || !ok {
		t.Fatalf("get after create: ok=%v err=%v", ok, err)
	}
	if got.(*domain.Material).Name != "PLA Filament" {
		t.Fatalf("unexpected name %q", got.(*domain.Material).Name)
	}
}

func TestServiceRejectsUnknownKind(t *testing.T) {
	reg := NewRegistry()
	store := memory.NewStore(reg.Schema())
	svc := NewService(store, WithRegistry(reg))

	_, err := svc.CreateRecord(context.Background(), &domain.Material{Name: "ghost"})
	var unknown UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("create: expected UnknownKindError, got %v", err)
	}
	if _, err := svc.UpdateRecord(context.Background(), domain.KindMaterial, "x", nil); !errors.As(err, &unknown) {
		t.Fatalf("update: expected UnknownKindError, got %v", err)
	}
	if err := svc.DeleteRecord(context.Background(), domain.KindMaterial, "x"); !errors.As(err, &unknown) {
		t.Fatalf("delete: expected UnknownKindError, got %v", err)
	}
	if _, _, err := svc.GetRecord(domain.KindMaterial, "x"); !errors.As(err, &unknown) {
		t.Fatalf("get: expected UnknownKindError, got %v", err)
	}
	if _, err := svc.ListRecords(domain.KindMaterial); !errors.As(err, &unknown) {
		t.Fatalf("list: expected UnknownKindError, got %v", err)
	}
}

func TestServiceUpdateAndDelete(t *testing.T) {
	svc := newTestService(t)
	created := createRecord(t, svc, &domain.Material{Name: "ABS"})

	updated, err := svc.UpdateRecord(context.Background(), domain.KindMaterial, created.RecordID(), func(rec domain.Record) error {
		rec.(*domain.Material).Manufacturer = "Polymaker"
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.(*domain.Material).Manufacturer != "Polymaker" {
		t.Fatalf("mutation not applied")
	}

	if err := svc.DeleteRecord(context.Background(), domain.KindMaterial, created.RecordID()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := svc.GetRecord(domain.KindMaterial, created.RecordID()); ok {
		t.Fatalf("expected record gone after delete")
	}
}

func TestRecomputeHardnessAveragesLinkedReadings(t *testing.T) {
	svc := newTestService(t)
	material := createRecord(t, svc, &domain.Material{Name: "TPU 95A"})
	materialID := domain.MaterialID(material.RecordID())

	scale := createRecord(t, svc, domain.NewHardnessScale(materialID, "Shore A"))
	scaleID := domain.DerivedID(scale.RecordID())
	for _, reading := range []float64{70, 72, 74} {
		createRecord(t, svc, domain.NewShoreMeasurement(materialID, scaleID, reading, "A"))
	}
	// A reading linked to a different derived record must not contribute.
	createRecord(t, svc, domain.NewShoreMeasurement(materialID, "other", 99, "A"))

	value, err := svc.RecomputeHardness(context.Background(), scaleID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if value != 72 {
		t.Fatalf("expected 72, got %v", value)
	}
	stored, _, _ := svc.GetRecord(domain.KindHardnessScale, string(scaleID))
	if stored.(*domain.HardnessScale).HardnessValue != 72 {
		t.Fatalf("derived value not persisted")
	}
}

func TestRecomputeHardnessWithoutReadingsKeepsStoredValue(t *testing.T) {
	svc := newTestService(t)
	scale := domain.NewHardnessScale("m1", "Shore D")
	scale.HardnessValue = 61.5
	created := createRecord(t, svc, scale)

	value, err := svc.RecomputeHardness(context.Background(), domain.DerivedID(created.RecordID()))
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if value != 61.5 {
		t.Fatalf("expected stored value untouched, got %v", value)
	}
}

func TestRecomputeHardnessMissingDerived(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.RecomputeHardness(context.Background(), "nope")
	var notFound domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRecomputeKrebsViscosity(t *testing.T) {
	svc := newTestService(t)
	krebs := createRecord(t, svc, domain.NewKrebsViscosity("paint-1"))
	id := domain.DerivedID(krebs.RecordID())

	createRecord(t, svc, domain.NewStormerMeasurement("paint-1", id, 113, 200))
	createRecord(t, svc, domain.NewStormerMeasurement("paint-1", id, 117, 200))

	value, err := svc.RecomputeKrebsViscosity(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if math.Abs(value-255.0) > 1e-9 {
		t.Fatalf("expected 255 KU, got %v", value)
	}
}

func TestRecomputeTensileStrengthInfersAreaFromSpecimen(t *testing.T) {
	svc := newTestService(t)
	uts := createRecord(t, svc, domain.NewUltimateTensileStrength("pc-1"))
	id := domain.DerivedID(uts.RecordID())

	m1 := domain.NewTensileMeasurement("pc-1", id, 500, 2.0)
	m1.SpecimenWidthMm, m1.SpecimenThicknessMm = 10, 4
	createRecord(t, svc, m1)
	createRecord(t, svc, domain.NewTensileMeasurement("pc-1", id, 400, 3.0))

	value, err := svc.RecomputeTensileStrength(context.Background(), id, 0)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if math.Abs(value-12.5) > 1e-9 {
		t.Fatalf("expected 12.5 MPa, got %v", value)
	}
}

func TestRecomputeTensileStrengthExplicitArea(t *testing.T) {
	svc := newTestService(t)
	uts := createRecord(t, svc, domain.NewUltimateTensileStrength("pc-2"))
	id := domain.DerivedID(uts.RecordID())
	createRecord(t, svc, domain.NewTensileMeasurement("pc-2", id, 1000, 1.5))

	value, err := svc.RecomputeTensileStrength(context.Background(), id, 25)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if math.Abs(value-40.0) > 1e-9 {
		t.Fatalf("expected 40 MPa, got %v", value)
	}
}

func TestRecomputeMeltFlowIndex(t *testing.T) {
	svc := newTestService(t)
	mfi := createRecord(t, svc, domain.NewMFIValue("pp-1"))
	id := domain.DerivedID(mfi.RecordID())

	createRecord(t, svc, domain.NewMFIMeasurement("pp-1", id, 2.5, 30))
	createRecord(t, svc, domain.NewMFIMeasurement("pp-1", id, 1.5, 30))

	value, err := svc.RecomputeMeltFlowIndex(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if math.Abs(value-40.0) > 1e-9 {
		t.Fatalf("expected 40 g/10min, got %v", value)
	}
}

func TestRecomputeSpecificGravityMixesInstrumentFamilies(t *testing.T) {
	svc := newTestService(t)
	gravity := createRecord(t, svc, domain.NewReferentialSpecificGravity("resin-1"))
	id := domain.DerivedID(gravity.RecordID())

	// (82-30)/(80-30) = 1.04
	createRecord(t, svc, domain.NewPycnometerMeasurement("resin-1", id, 30, 80, 82))
	createRecord(t, svc, domain.NewHydrometerMeasurement("resin-1", id, 1.06))

	value, err := svc.RecomputeSpecificGravity(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if math.Abs(value-1.05) > 1e-9 {
		t.Fatalf("expected 1.05, got %v", value)
	}
}

func TestRecomputeSurfaceTension(t *testing.T) {
	svc := newTestService(t)
	tension := createRecord(t, svc, domain.NewSurfaceTensionValue("water-like"))
	id := domain.DerivedID(tension.RecordID())

	createRecord(t, svc, domain.NewWilhelmyMeasurement("water-like", id, 71.8))
	createRecord(t, svc, domain.NewWilhelmyMeasurement("water-like", id, 73.0))

	value, err := svc.RecomputeSurfaceTension(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if math.Abs(value-72.4) > 1e-9 {
		t.Fatalf("expected 72.4 mN/m, got %v", value)
	}
}

func TestRecomputeSurfaceEnergyPairsProbeLiquids(t *testing.T) {
	svc := newTestService(t)
	energy := createRecord(t, svc, domain.NewCriticalSurfaceTension("pe-1"))
	id := domain.DerivedID(energy.RecordID())

	createRecord(t, svc, domain.NewContactAngleMeasurement("pe-1", id, "water", 94))
	createRecord(t, svc, domain.NewContactAngleMeasurement("pe-1", id, "water", 96))
	createRecord(t, svc, domain.NewContactAngleMeasurement("pe-1", id, "diiodomethane", 52))

	value, err := svc.RecomputeSurfaceEnergy(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if value <= 0 {
		t.Fatalf("expected positive surface energy, got %v", value)
	}
	stored, _, _ := svc.GetRecord(domain.KindCriticalSurfaceTension, string(id))
	cst := stored.(*domain.CriticalSurfaceTension)
	if cst.SurfaceEnergyMNm != value {
		t.Fatalf("returned %v but stored %v", value, cst.SurfaceEnergyMNm)
	}
	if math.Abs(cst.SurfaceEnergyMNm-(cst.DispersiveMNm+cst.PolarMNm)) > 1e-9 {
		t.Fatalf("total must equal dispersive+polar split")
	}
}

func TestRecomputeSurfaceEnergyAcceptsCompleteWettingAngle(t *testing.T) {
	svc := newTestService(t)
	energy := createRecord(t, svc, domain.NewCriticalSurfaceTension("pe-3"))
	id := domain.DerivedID(energy.RecordID())

	// Diiodomethane wets many solids completely; a 0 degree angle is a real
	// reading and must not be dropped as missing.
	createRecord(t, svc, domain.NewContactAngleMeasurement("pe-3", id, "water", 70))
	createRecord(t, svc, domain.NewContactAngleMeasurement("pe-3", id, "diiodomethane", 0))

	value, err := svc.RecomputeSurfaceEnergy(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	want, _, _ := domain.NewCriticalSurfaceTension("pe-3").DeriveOwensWendt(70, 0)
	if math.Abs(value-want) > 1e-9 {
		t.Fatalf("expected %v from the 70/0 probe pair, got %v", want, value)
	}
	if value == 0 {
		t.Fatalf("complete wetting reading was discarded")
	}
}

func TestRecomputeSurfaceEnergyNeedsBothProbes(t *testing.T) {
	svc := newTestService(t)
	energy := domain.NewCriticalSurfaceTension("pe-2")
	energy.SurfaceEnergyMNm = 33.3
	created := createRecord(t, svc, energy)
	id := domain.DerivedID(created.RecordID())

	createRecord(t, svc, domain.NewContactAngleMeasurement("pe-2", id, "water", 90))

	value, err := svc.RecomputeSurfaceEnergy(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if value != 33.3 {
		t.Fatalf("expected stored value with one probe missing, got %v", value)
	}
}

func TestRecomputeThermalExpansion(t *testing.T) {
	svc := newTestService(t)
	cte := createRecord(t, svc, domain.NewCoefficientOfThermalExpansion("abs-1"))
	id := domain.DerivedID(cte.RecordID())

	m1 := domain.NewTMAMeasurement("abs-1", id, 30, 0)
	m1.OriginalLengthMm = 25
	createRecord(t, svc, m1)
	m2 := domain.NewTMAMeasurement("abs-1", id, 80, 50)
	createRecord(t, svc, m2)

	value, err := svc.RecomputeThermalExpansion(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if math.Abs(value-40.0) > 1e-9 {
		t.Fatalf("expected 40 ppm/°C, got %v", value)
	}
	stored, _, _ := svc.GetRecord(domain.KindCoefficientOfThermalExpansion, string(id))
	rec := stored.(*domain.CoefficientOfThermalExpansion)
	if rec.TemperatureRangeLowC != 30 || rec.TemperatureRangeHighC != 80 {
		t.Fatalf("temperature range not updated: %v..%v", rec.TemperatureRangeLowC, rec.TemperatureRangeHighC)
	}
}

func TestRecomputeMeltingPointPicksScanPeak(t *testing.T) {
	svc := newTestService(t)
	melting := createRecord(t, svc, domain.NewMeltingPointValue("pla-1"))
	id := domain.DerivedID(melting.RecordID())

	createRecord(t, svc, domain.NewDSCMeltingMeasurement("pla-1", id, 150, 3.2))
	createRecord(t, svc, domain.NewDSCMeltingMeasurement("pla-1", id, 168, 9.7))
	createRecord(t, svc, domain.NewDSCMeltingMeasurement("pla-1", id, 180, 1.1))
	// An exotherm and a point on another derived record must not contribute.
	createRecord(t, svc, domain.NewDSCMeltingMeasurement("pla-1", id, 110, -4.0))
	createRecord(t, svc, domain.NewDSCMeltingMeasurement("pla-1", "other", 200, 50))

	value, err := svc.RecomputeMeltingPoint(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if math.Abs(value-168.0) > 1e-9 {
		t.Fatalf("expected peak 168°C, got %v", value)
	}
	stored, _, _ := svc.GetRecord(domain.KindMeltingPointValue, string(id))
	if stored.(*domain.MeltingPointValue).PeakC != 168 {
		t.Fatalf("peak temperature not persisted")
	}
}

func TestRecomputeStorageModulusMixesInstrumentFamilies(t *testing.T) {
	svc := newTestService(t)
	modulus := createRecord(t, svc, domain.NewStorageModulus("tpu-1"))
	id := domain.DerivedID(modulus.RecordID())

	createRecord(t, svc, domain.NewDMAMeasurement("tpu-1", id, 2.0e9, 1.0e8))
	createRecord(t, svc, domain.NewRheometerMeasurement("tpu-1", id, 2.4e9, 1.4e8))

	value, err := svc.RecomputeStorageModulus(context.Background(), id)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if math.Abs(value-2.2e9) > 1 {
		t.Fatalf("expected mean G' 2.2e9 Pa, got %v", value)
	}
	stored, _, _ := svc.GetRecord(domain.KindStorageModulus, string(id))
	rec := stored.(*domain.StorageModulus)
	if math.Abs(rec.LossFactor-1.2e8/2.2e9) > 1e-12 {
		t.Fatalf("loss factor not persisted alongside the moduli: %v", rec.LossFactor)
	}
}

type captureLogger struct {
	debugs int
	errors int
}

func (l *captureLogger) Debug(string, ...any) { l.debugs++ }
func (l *captureLogger) Info(string, ...any)  {}
func (l *captureLogger) Warn(string, ...any)  {}
func (l *captureLogger) Error(string, ...any) { l.errors++ }

func TestServiceObservabilityOptions(t *testing.T) {
	logger := &captureLogger{}
	metrics := NewExpvarRecorder("")
	tracer := NewTraceLog(nil)
	freeze := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := memory.NewStore(DefaultRegistry().Schema())
	store.SetNowFunc(func() time.Time { return freeze })
	svc := NewService(store,
		WithLogger(logger),
		WithMetricsRecorder(metrics),
		WithTracer(tracer),
		WithClock(ClockFunc(func() time.Time { return freeze })),
	)

	createRecord(t, svc, &domain.Material{Name: "PETG"})
	if err := svc.DeleteRecord(context.Background(), domain.KindMaterial, "missing"); err == nil {
		t.Fatalf("expected delete of missing record to fail")
	}

	if logger.debugs == 0 || logger.errors == 0 {
		t.Fatalf("logger saw debugs=%d errors=%d", logger.debugs, logger.errors)
	}

	snap := metrics.Snapshot()
	if snap["create_material"].Success != 1 {
		t.Fatalf("expected one create success, got %+v", snap)
	}
	if snap["delete_material"].Error != 1 {
		t.Fatalf("expected one delete error, got %+v", snap)
	}

	spans := tracer.Spans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Operation != "create_material" || spans[0].Err != "" {
		t.Fatalf("unexpected first span %+v", spans[0])
	}
	if spans[1].Err == "" {
		t.Fatalf("unexpected second span %+v", spans[1])
	}

	created := createRecord(t, svc, &domain.Material{Name: "ASA"})
	if !created.CreatedAt.Equal(freeze) {
		t.Fatalf("expected frozen store clock timestamp, got %v", created.CreatedAt)
	}
}
