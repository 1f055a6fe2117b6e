package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"materialcore/internal/infra/persistence/memory"
	"materialcore/pkg/domain"
)

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestSeedLoaderLoadsFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "dataSources.json", `[
		{"id":"src-1","source_type":"manufacturer_datasheet","name":"BASF datasheet"}
	]`)
	writeSeedFile(t, dir, "dataProvenances.json", `[
		{"id":"prov-1","version":"1.0","credibility_level":"manufacturer_stated","source_ids":["src-1"]}
	]`)
	writeSeedFile(t, dir, "rawMaterials.json", `[
		{"id":"raw-1","name":"Polypropylene","material_type":"polymer","can_be_base":true},
		{"id":"raw-2","name":"Talc","material_type":"mineral","can_be_additive":true}
	]`)
	writeSeedFile(t, dir, "materialAdditives.json", `[
		{"id":"add-1","raw_material_id":"raw-2","name":"Talc filler","provenance_id":"prov-1"}
	]`)

	store := memory.NewStore(DefaultRegistry().Schema())
	loader := NewSeedLoader(store, nil)
	report, err := loader.Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if report.Loaded["rawMaterials.json"] != 2 {
		t.Fatalf("expected 2 raw materials, got %+v", report.Loaded)
	}
	if report.TotalRecords() != 5 {
		t.Fatalf("expected 5 records total, got %d", report.TotalRecords())
	}
	if len(report.Skipped) != 8 {
		t.Fatalf("expected 8 skipped files, got %d (%v)", len(report.Skipped), report.Skipped)
	}

	rec, ok := store.Get(domain.KindRawMaterial, "raw-1")
	if !ok {
		t.Fatalf("raw-1 not stored")
	}
	raw := rec.(*domain.RawMaterial)
	if raw.Name != "Polypropylene" || !raw.CanBeBase {
		t.Fatalf("unexpected raw material %+v", raw)
	}

	rec, ok = store.Get(domain.KindMaterialAdditive, "add-1")
	if !ok {
		t.Fatalf("add-1 not stored")
	}
	if rec.(*domain.MaterialAdditive).ProvenanceID != "prov-1" {
		t.Fatalf("provenance reference lost in decode")
	}
}

func TestSeedLoaderEmptyDirectory(t *testing.T) {
	store := memory.NewStore(DefaultRegistry().Schema())
	loader := NewSeedLoader(store, nil)
	report, err := loader.Load(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if report.TotalRecords() != 0 {
		t.Fatalf("expected nothing loaded")
	}
	if len(report.Skipped) != len(SeedLoadOrder()) {
		t.Fatalf("expected every file skipped, got %v", report.Skipped)
	}
}

func TestSeedLoaderMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "dataSources.json", `{"not":"an array"}`)

	store := memory.NewStore(DefaultRegistry().Schema())
	loader := NewSeedLoader(store, nil)
	if _, err := loader.Load(context.Background(), dir); err == nil {
		t.Fatalf("expected malformed seed file to fail")
	}
}

func TestSeedLoaderDuplicateIDFails(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "rawMaterials.json", `[
		{"id":"raw-1","name":"PP"},
		{"id":"raw-1","name":"PP again"}
	]`)

	store := memory.NewStore(DefaultRegistry().Schema())
	loader := NewSeedLoader(store, nil)
	if _, err := loader.Load(context.Background(), dir); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
	// The failing file's transaction must not leave partial state behind.
	if _, ok := store.Get(domain.KindRawMaterial, "raw-1"); ok {
		t.Fatalf("rolled back transaction left records behind")
	}
}

func TestSeedLoadOrderRespectsDependencies(t *testing.T) {
	order := SeedLoadOrder()
	position := make(map[domain.EntityKind]int, len(order))
	for i, file := range order {
		position[file.Kind] = i
	}
	deps := map[domain.EntityKind]domain.EntityKind{
		domain.KindDataProvenance:        domain.KindDataSource,
		domain.KindMaterialAdditive:      domain.KindRawMaterial,
		domain.KindPropertyEffect:        domain.KindMaterialAdditive,
		domain.KindAdditiveCompatibility: domain.KindCompatibilizer,
		domain.KindPropertyTarget:        domain.KindTargetMaterialProfile,
		domain.KindFormulationComponent:  domain.KindFormulation,
		domain.KindFormulationIntent:     domain.KindFormulation,
	}
	for kind, dep := range deps {
		if position[kind] <= position[dep] {
			t.Fatalf("%s must load after %s", kind, dep)
		}
	}
}
