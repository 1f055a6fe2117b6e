package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAbstractionLevelsAreFixedPerType(t *testing.T) {
	derived := []Leveled{
		&HardnessScale{},
		&KrebsViscosity{},
		&UltimateTensileStrength{},
		&MFIValue{},
		&ReferentialSpecificGravity{},
		&CriticalSurfaceTension{},
		&SurfaceTensionValue{},
		&CoefficientOfThermalExpansion{},
		&MeltingPointValue{},
		&StorageModulus{},
	}
	for _, d := range derived {
		if d.AbstractionLevel() != LevelDerived {
			t.Fatalf("%T must report LevelDerived, got %v", d, d.AbstractionLevel())
		}
	}
	measurements := []Leveled{
		&ShoreMeasurement{},
		&StormerMeasurement{},
		&TensileMeasurement{},
		&MFIMeasurement{},
		&PycnometerMeasurement{},
		&HydrometerMeasurement{},
		&DensityMeterMeasurement{},
		&ContactAngleMeasurement{},
		&WilhelmyMeasurement{},
		&TMAMeasurement{},
		&DSCMeltingMeasurement{},
		&DMAMeasurement{},
		&RheometerMeasurement{},
	}
	for _, m := range measurements {
		if m.AbstractionLevel() != LevelMeasurement {
			t.Fatalf("%T must report LevelMeasurement, got %v", m, m.AbstractionLevel())
		}
	}
}

func TestEntityKindsAreUnique(t *testing.T) {
	records := []Record{
		&Material{}, &RawMaterial{}, &ReferenceMaterial{},
		&HardnessScale{}, &ShoreMeasurement{},
		&KrebsViscosity{}, &StormerMeasurement{},
		&UltimateTensileStrength{}, &TensileMeasurement{},
		&MFIValue{}, &MFIMeasurement{},
		&ReferentialSpecificGravity{}, &PycnometerMeasurement{},
		&HydrometerMeasurement{}, &DensityMeterMeasurement{},
		&CriticalSurfaceTension{}, &ContactAngleMeasurement{},
		&SurfaceTensionValue{}, &WilhelmyMeasurement{},
		&CoefficientOfThermalExpansion{}, &TMAMeasurement{},
		&MeltingPointValue{}, &DSCMeltingMeasurement{},
		&StorageModulus{}, &DMAMeasurement{}, &RheometerMeasurement{},
		&Resolution{}, &Purpose{}, &Machinability{}, &Printability{}, &MoldFabrication{},
		&Device{}, &Sourcing{},
		&DataSource{}, &DataProvenance{},
		&MaterialAdditive{}, &PropertyEffect{}, &AdditiveCompatibility{}, &Compatibilizer{},
		&TargetMaterialProfile{}, &PropertyTarget{},
		&Formulation{}, &FormulationComponent{}, &FormulationIntent{},
	}
	seen := map[EntityKind]string{}
	for _, r := range records {
		kind := r.Kind()
		if kind == "" {
			t.Fatalf("%T reports an empty kind", r)
		}
		if prev, ok := seen[kind]; ok {
			t.Fatalf("kind %q reused by %T and %s", kind, r, prev)
		}
		seen[kind] = kindName(r)
	}
}

func kindName(r Record) string { return string(r.Kind()) }

func TestBaseStamping(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	m := &Material{Name: "HDPE blend"}
	m.SetRecordID("mat-42")
	m.StampCreated(created)
	if m.CreatedAt != created || m.UpdatedAt != created {
		t.Fatalf("StampCreated must set both timestamps")
	}
	m.StampUpdated(updated)
	if m.CreatedAt != created {
		t.Fatalf("StampUpdated must not touch CreatedAt")
	}
	if m.UpdatedAt != updated {
		t.Fatalf("StampUpdated must advance UpdatedAt")
	}
	if m.RecordID() != "mat-42" {
		t.Fatalf("unexpected record id %q", m.RecordID())
	}
}

func TestMeasurementSequenceNumberRoundTrip(t *testing.T) {
	m := NewShoreMeasurement("mat-1", "hs-1", 72, "A")
	m.SequenceNumber = 7
	m.Operator = "lab-a"

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored ShoreMeasurement
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.SequenceNumber != 7 {
		t.Fatalf("sequence number lost in round trip: %d", restored.SequenceNumber)
	}
	if restored.Reading != 72 || restored.Operator != "lab-a" {
		t.Fatalf("measurement fields lost in round trip: %+v", restored)
	}
}

func TestResolutionScaleLevels(t *testing.T) {
	cases := []struct {
		scale ResolutionScale
		level int
	}{
		{ScaleExperimental, 0},
		{ScaleContinuum, 1},
		{ScaleMesoscale, 2},
		{ScaleAtomistic, 3},
		{ScaleQuantum, 4},
		{ResolutionScale("astrological"), -1},
	}
	for _, tc := range cases {
		if got := tc.scale.Level(); got != tc.level {
			t.Fatalf("scale %q: expected level %d, got %d", tc.scale, tc.level, got)
		}
	}
	r := NewResolution("mat-1", ScaleAtomistic, VariantMD)
	if r.Level() != 3 {
		t.Fatalf("resolution record must delegate to its scale, got %d", r.Level())
	}
}

func TestConstructorDefaults(t *testing.T) {
	shore := NewShoreMeasurement("mat-1", "hs-1", 70, "A")
	if shore.ReadingTimeS != 1.0 || shore.SampleThicknessMm != 6.0 || shore.TemperatureC != 23.0 {
		t.Fatalf("unexpected shore defaults: %+v", shore)
	}

	mfi := NewMFIValue("mat-1")
	if mfi.TestTemperatureC != 190.0 || mfi.TestLoadKg != 2.16 {
		t.Fatalf("unexpected MFI condition defaults: %+v", mfi)
	}

	gravity := NewReferentialSpecificGravity("mat-1")
	if gravity.ReferenceStandard != "water_4c" || gravity.ReferenceTemperatureC != 4.0 {
		t.Fatalf("unexpected gravity reference defaults: %+v", gravity)
	}

	uts := NewUltimateTensileStrength("mat-1")
	if uts.SpecimenType != "Type I" || uts.TestSpeedMmPerMin != 5.0 {
		t.Fatalf("unexpected tensile defaults: %+v", uts)
	}

	device := NewDevice("bench durometer", "")
	if device.Category != DeviceGeneric || device.Status != "operational" {
		t.Fatalf("unexpected device defaults: %+v", device)
	}
	printer := NewPrinter("workhorse", "fdm")
	if printer.Category != DeviceThreeDPrinter || printer.PrintTechnology != "fdm" {
		t.Fatalf("unexpected printer defaults: %+v", printer)
	}

	purpose := NewPurpose("mat-1", "")
	if purpose.Category != PurposeGeneric {
		t.Fatalf("empty purpose category must default to generic, got %q", purpose.Category)
	}
	if got := (&Machinability{}).PurposeCategory(); got != PurposeCNCMachining {
		t.Fatalf("machinability category must be fixed, got %q", got)
	}

	sourcing := NewSourcing("raw-1", SourcingCommercial)
	if sourcing.Route != SourcingCommercial || sourcing.CostCurrency != "USD" {
		t.Fatalf("unexpected sourcing defaults: %+v", sourcing)
	}

	prov := NewDataProvenance("1.0", "", nil, "")
	if prov.CredibilityLevel != CredibilityUnverified {
		t.Fatalf("empty credibility must default to unverified, got %q", prov.CredibilityLevel)
	}
}

func TestTypedIDZeroChecks(t *testing.T) {
	if !MaterialID("").IsZero() || MaterialID("mat-1").IsZero() {
		t.Fatalf("MaterialID zero check broken")
	}
	if !DerivedID("").IsZero() || DerivedID("hs-1").IsZero() {
		t.Fatalf("DerivedID zero check broken")
	}
	if !SourcingID("").IsZero() || SourcingID("src-1").IsZero() {
		t.Fatalf("SourcingID zero check broken")
	}
}
