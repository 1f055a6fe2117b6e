package catalog

import (
	"context"
	"testing"

	"materialcore/internal/infra/persistence/memory"
	"materialcore/pkg/domain"
)

func seedRecord(t *testing.T, store domain.PersistentStore, rec domain.Record) string {
	t.Helper()
	var id string
	err := store.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		created, err := tx.Create(rec)
		if err != nil {
			return err
		}
		id = created.RecordID()
		return nil
	})
	if err != nil {
		t.Fatalf("seed %s: %v", rec.Kind(), err)
	}
	return id
}

func TestResolverMaterial(t *testing.T) {
	store := memory.NewStore(DefaultRegistry().Schema())
	id := seedRecord(t, store, &domain.Material{Name: "Nylon 12"})
	resolver := NewResolver(store)

	material, ok := resolver.Material(domain.MaterialID(id))
	if !ok {
		t.Fatalf("expected material to resolve")
	}
	if material.Name != "Nylon 12" {
		t.Fatalf("unexpected name %q", material.Name)
	}
}

func TestResolverToleratesAbsence(t *testing.T) {
	store := memory.NewStore(DefaultRegistry().Schema())
	resolver := NewResolver(store)

	if _, ok := resolver.Material(""); ok {
		t.Fatalf("empty id must not resolve")
	}
	if _, ok := resolver.Material("dangling"); ok {
		t.Fatalf("dangling id must not resolve")
	}
	if _, ok := resolver.Device("dangling"); ok {
		t.Fatalf("dangling device must not resolve")
	}
	if _, ok := resolver.Provenance("dangling"); ok {
		t.Fatalf("dangling provenance must not resolve")
	}
	if _, ok := resolver.Purpose("dangling"); ok {
		t.Fatalf("dangling purpose must not resolve")
	}
}

func TestResolverTypedLookups(t *testing.T) {
	store := memory.NewStore(DefaultRegistry().Schema())
	resolver := NewResolver(store)

	rawID := seedRecord(t, store, &domain.RawMaterial{Name: "Talc", CanBeAdditive: true})
	if raw, ok := resolver.RawMaterial(domain.RawMaterialID(rawID)); !ok || raw.Name != "Talc" {
		t.Fatalf("raw material did not resolve")
	}

	refID := seedRecord(t, store, &domain.ReferenceMaterial{Name: "PLA"})
	if ref, ok := resolver.ReferenceMaterial(domain.ReferenceMaterialID(refID)); !ok || ref.Name != "PLA" {
		t.Fatalf("reference material did not resolve")
	}

	deviceID := seedRecord(t, store, domain.NewDevice("Prusa MK4", domain.DeviceThreeDPrinter))
	if device, ok := resolver.Device(domain.DeviceID(deviceID)); !ok || device.Name != "Prusa MK4" {
		t.Fatalf("device did not resolve")
	}

	sourceID := seedRecord(t, store, &domain.DataSource{Name: "handbook"})
	if _, ok := resolver.Source(domain.SourceID(sourceID)); !ok {
		t.Fatalf("source did not resolve")
	}

	provID := seedRecord(t, store, domain.NewDataProvenance("1.0", "", nil, ""))
	if prov, ok := resolver.Provenance(domain.ProvenanceID(provID)); !ok || prov.CredibilityLevel != domain.CredibilityUnverified {
		t.Fatalf("provenance did not resolve with default credibility")
	}

	profileID := seedRecord(t, store, &domain.TargetMaterialProfile{Name: "stiff housing"})
	if _, ok := resolver.Profile(domain.ProfileID(profileID)); !ok {
		t.Fatalf("profile did not resolve")
	}

	formulationID := seedRecord(t, store, &domain.Formulation{Name: "PP+talc"})
	if _, ok := resolver.Formulation(domain.FormulationID(formulationID)); !ok {
		t.Fatalf("formulation did not resolve")
	}

	additiveID := seedRecord(t, store, &domain.MaterialAdditive{Name: "talc filler"})
	if _, ok := resolver.Additive(domain.AdditiveID(additiveID)); !ok {
		t.Fatalf("additive did not resolve")
	}

	compatID := seedRecord(t, store, &domain.Compatibilizer{Name: "PP-g-MA"})
	if _, ok := resolver.Compatibilizer(domain.CompatibilizerID(compatID)); !ok {
		t.Fatalf("compatibilizer did not resolve")
	}

	sourcingID := seedRecord(t, store, domain.NewSourcing("talc-raw", domain.SourcingNatural))
	if _, ok := resolver.Sourcing(domain.SourcingID(sourcingID)); !ok {
		t.Fatalf("sourcing did not resolve")
	}
}

func TestResolverPurposeAcrossKinds(t *testing.T) {
	store := memory.NewStore(DefaultRegistry().Schema())
	resolver := NewResolver(store)

	genericID := seedRecord(t, store, domain.NewPurpose("m1", ""))
	machinabilityID := seedRecord(t, store, &domain.Machinability{MaterialID: "m1"})

	generic, ok := resolver.Purpose(domain.PurposeID(genericID))
	if !ok {
		t.Fatalf("generic purpose did not resolve")
	}
	if generic.PurposeCategory() != domain.PurposeGeneric {
		t.Fatalf("unexpected category %q", generic.PurposeCategory())
	}

	machinability, ok := resolver.Purpose(domain.PurposeID(machinabilityID))
	if !ok {
		t.Fatalf("machinability did not resolve as purpose")
	}
	if machinability.PurposeCategory() != domain.PurposeCNCMachining {
		t.Fatalf("unexpected category %q", machinability.PurposeCategory())
	}
}
