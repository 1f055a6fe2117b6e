package catalog

import (
	"materialcore/pkg/domain"
)

// Resolver turns soft references into records. Every lookup tolerates
// absence: an empty id, a dangling reference, or a stored record of an
// unexpected type all resolve to (zero, false), never an error.
type Resolver struct {
	store domain.PersistentStore
}

// NewResolver constructs a resolver over the given store.
func NewResolver(store domain.PersistentStore) *Resolver {
	return &Resolver{store: store}
}

func resolveAs[T domain.Record](store domain.PersistentStore, kind domain.EntityKind, id string) (T, bool) {
	var zero T
	if id == "" {
		return zero, false
	}
	rec, ok := store.Get(kind, id)
	if !ok {
		return zero, false
	}
	typed, ok := rec.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Material resolves a material reference.
func (r *Resolver) Material(id domain.MaterialID) (*domain.Material, bool) {
	return resolveAs[*domain.Material](r.store, domain.KindMaterial, string(id))
}

// RawMaterial resolves a raw material reference.
func (r *Resolver) RawMaterial(id domain.RawMaterialID) (*domain.RawMaterial, bool) {
	return resolveAs[*domain.RawMaterial](r.store, domain.KindRawMaterial, string(id))
}

// ReferenceMaterial resolves a reference material reference.
func (r *Resolver) ReferenceMaterial(id domain.ReferenceMaterialID) (*domain.ReferenceMaterial, bool) {
	return resolveAs[*domain.ReferenceMaterial](r.store, domain.KindReferenceMaterial, string(id))
}

// Device resolves a device reference.
func (r *Resolver) Device(id domain.DeviceID) (*domain.Device, bool) {
	return resolveAs[*domain.Device](r.store, domain.KindDevice, string(id))
}

// Sourcing resolves a sourcing reference.
func (r *Resolver) Sourcing(id domain.SourcingID) (*domain.Sourcing, bool) {
	return resolveAs[*domain.Sourcing](r.store, domain.KindSourcing, string(id))
}

// Source resolves a data source reference.
func (r *Resolver) Source(id domain.SourceID) (*domain.DataSource, bool) {
	return resolveAs[*domain.DataSource](r.store, domain.KindDataSource, string(id))
}

// Provenance resolves a provenance reference.
func (r *Resolver) Provenance(id domain.ProvenanceID) (*domain.DataProvenance, bool) {
	return resolveAs[*domain.DataProvenance](r.store, domain.KindDataProvenance, string(id))
}

// Additive resolves an additive reference.
func (r *Resolver) Additive(id domain.AdditiveID) (*domain.MaterialAdditive, bool) {
	return resolveAs[*domain.MaterialAdditive](r.store, domain.KindMaterialAdditive, string(id))
}

// Compatibilizer resolves a compatibilizer reference.
func (r *Resolver) Compatibilizer(id domain.CompatibilizerID) (*domain.Compatibilizer, bool) {
	return resolveAs[*domain.Compatibilizer](r.store, domain.KindCompatibilizer, string(id))
}

// Profile resolves a target material profile reference.
func (r *Resolver) Profile(id domain.ProfileID) (*domain.TargetMaterialProfile, bool) {
	return resolveAs[*domain.TargetMaterialProfile](r.store, domain.KindTargetMaterialProfile, string(id))
}

// Formulation resolves a formulation reference.
func (r *Resolver) Formulation(id domain.FormulationID) (*domain.Formulation, bool) {
	return resolveAs[*domain.Formulation](r.store, domain.KindFormulation, string(id))
}

// Purpose resolves an intended-use reference. Purpose records live under
// four kinds; the dedicated kinds are checked before the generic one.
func (r *Resolver) Purpose(id domain.PurposeID) (domain.Purposed, bool) {
	if id == "" {
		return nil, false
	}
	kinds := []domain.EntityKind{
		domain.KindMachinability,
		domain.KindPrintability,
		domain.KindMoldFabrication,
		domain.KindPurpose,
	}
	for _, kind := range kinds {
		if rec, ok := r.store.Get(kind, string(id)); ok {
			if purposed, ok := rec.(domain.Purposed); ok {
				return purposed, true
			}
		}
	}
	return nil, false
}
