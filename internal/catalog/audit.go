package catalog

import (
	"context"
	"fmt"

	"materialcore/pkg/domain"
)

// Finding reports one dangling soft reference discovered by the audit.
type Finding struct {
	Kind  domain.EntityKind `json:"kind"`
	ID    string            `json:"id"`
	Field string            `json:"field"`
	Ref   string            `json:"ref"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %q: %s references missing %q", f.Kind, f.ID, f.Field, f.Ref)
}

// ReferenceAudit walks a consistent snapshot of the store and reports every
// soft reference pointing at a record that does not exist. Findings are
// advisory: dangling references never block writes or reads, they only show
// up here.
func ReferenceAudit(ctx context.Context, store domain.PersistentStore) ([]Finding, error) {
	var findings []Finding
	err := store.View(ctx, func(view domain.TransactionView) error {
		a := auditor{view: view}
		a.auditProvenance()
		a.auditSourcing()
		a.auditRawMaterials()
		a.auditAdditives()
		a.auditProfiles()
		a.auditFormulations()
		findings = a.findings
		return nil
	})
	return findings, err
}

type auditor struct {
	view     domain.TransactionView
	findings []Finding
}

func (a *auditor) check(rec domain.Record, field string, refKind domain.EntityKind, ref string) {
	if ref == "" {
		return
	}
	if _, ok := a.view.Find(refKind, ref); ok {
		return
	}
	a.findings = append(a.findings, Finding{Kind: rec.Kind(), ID: rec.RecordID(), Field: field, Ref: ref})
}

// checkPurpose tolerates the purpose reference landing on any of the four
// purpose kinds.
func (a *auditor) checkPurpose(rec domain.Record, field string, ref string) {
	if ref == "" {
		return
	}
	for _, kind := range []domain.EntityKind{
		domain.KindMachinability,
		domain.KindPrintability,
		domain.KindMoldFabrication,
		domain.KindPurpose,
	} {
		if _, ok := a.view.Find(kind, ref); ok {
			return
		}
	}
	a.findings = append(a.findings, Finding{Kind: rec.Kind(), ID: rec.RecordID(), Field: field, Ref: ref})
}

func (a *auditor) auditProvenance() {
	for _, rec := range a.view.List(domain.KindDataProvenance) {
		prov, ok := rec.(*domain.DataProvenance)
		if !ok {
			continue
		}
		for _, sourceID := range prov.SourceIDs {
			a.check(prov, "source_ids", domain.KindDataSource, string(sourceID))
		}
	}
}

func (a *auditor) auditSourcing() {
	for _, rec := range a.view.List(domain.KindSourcing) {
		sourcing, ok := rec.(*domain.Sourcing)
		if !ok {
			continue
		}
		a.check(sourcing, "raw_material_id", domain.KindRawMaterial, string(sourcing.RawMaterialID))
		a.check(sourcing, "natural_sourcing_id", domain.KindSourcing, string(sourcing.NaturalSourcingID))
		a.check(sourcing, "open_source_sourcing_id", domain.KindSourcing, string(sourcing.OpenSourceSourcingID))
	}
}

func (a *auditor) auditRawMaterials() {
	for _, rec := range a.view.List(domain.KindRawMaterial) {
		raw, ok := rec.(*domain.RawMaterial)
		if !ok {
			continue
		}
		for _, sourcingID := range raw.SourcingIDs {
			a.check(raw, "sourcing_ids", domain.KindSourcing, string(sourcingID))
		}
	}
}

func (a *auditor) auditAdditives() {
	for _, rec := range a.view.List(domain.KindMaterialAdditive) {
		additive, ok := rec.(*domain.MaterialAdditive)
		if !ok {
			continue
		}
		a.check(additive, "raw_material_id", domain.KindRawMaterial, string(additive.RawMaterialID))
		a.check(additive, "provenance_id", domain.KindDataProvenance, string(additive.ProvenanceID))
	}
	for _, rec := range a.view.List(domain.KindPropertyEffect) {
		effect, ok := rec.(*domain.PropertyEffect)
		if !ok {
			continue
		}
		a.check(effect, "additive_id", domain.KindMaterialAdditive, string(effect.AdditiveID))
		a.check(effect, "provenance_id", domain.KindDataProvenance, string(effect.ProvenanceID))
	}
	for _, rec := range a.view.List(domain.KindAdditiveCompatibility) {
		compat, ok := rec.(*domain.AdditiveCompatibility)
		if !ok {
			continue
		}
		a.check(compat, "additive_id", domain.KindMaterialAdditive, string(compat.AdditiveID))
		a.check(compat, "base_material_id", domain.KindRawMaterial, string(compat.BaseMaterialID))
		a.check(compat, "compatibilizer_id", domain.KindCompatibilizer, string(compat.CompatibilizerID))
		a.check(compat, "provenance_id", domain.KindDataProvenance, string(compat.ProvenanceID))
	}
	for _, rec := range a.view.List(domain.KindCompatibilizer) {
		comp, ok := rec.(*domain.Compatibilizer)
		if !ok {
			continue
		}
		a.check(comp, "raw_material_id", domain.KindRawMaterial, string(comp.RawMaterialID))
		a.check(comp, "provenance_id", domain.KindDataProvenance, string(comp.ProvenanceID))
	}
}

func (a *auditor) auditProfiles() {
	for _, rec := range a.view.List(domain.KindTargetMaterialProfile) {
		profile, ok := rec.(*domain.TargetMaterialProfile)
		if !ok {
			continue
		}
		a.checkPurpose(profile, "purpose_id", string(profile.PurposeID))
		a.check(profile, "reference_material_id", domain.KindReferenceMaterial, string(profile.ReferenceMaterialID))
	}
	for _, rec := range a.view.List(domain.KindPropertyTarget) {
		target, ok := rec.(*domain.PropertyTarget)
		if !ok {
			continue
		}
		a.check(target, "profile_id", domain.KindTargetMaterialProfile, string(target.ProfileID))
	}
}

func (a *auditor) auditFormulations() {
	for _, rec := range a.view.List(domain.KindFormulation) {
		formulation, ok := rec.(*domain.Formulation)
		if !ok {
			continue
		}
		a.check(formulation, "target_profile_id", domain.KindTargetMaterialProfile, string(formulation.TargetProfileID))
		a.check(formulation, "base_material_id", domain.KindRawMaterial, string(formulation.BaseMaterialID))
		a.check(formulation, "provenance_id", domain.KindDataProvenance, string(formulation.ProvenanceID))
	}
	for _, rec := range a.view.List(domain.KindFormulationComponent) {
		component, ok := rec.(*domain.FormulationComponent)
		if !ok {
			continue
		}
		a.check(component, "formulation_id", domain.KindFormulation, string(component.FormulationID))
		a.check(component, "material_id", domain.KindRawMaterial, string(component.MaterialID))
	}
	for _, rec := range a.view.List(domain.KindFormulationIntent) {
		intent, ok := rec.(*domain.FormulationIntent)
		if !ok {
			continue
		}
		a.check(intent, "formulation_id", domain.KindFormulation, string(intent.FormulationID))
	}
}
