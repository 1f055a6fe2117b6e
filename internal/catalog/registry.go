// Package catalog wires the domain model to persistence and exposes the
// transactional service surface of the materials catalogue.
package catalog

import (
	"fmt"
	"sort"

	"materialcore/internal/infra/persistence/memory"
	"materialcore/pkg/domain"
)

// UnknownKindError reports a registry lookup for a kind that was never
// registered. It is the one failure in the catalogue that is loud by
// contract: every other dangling reference resolves to absence.
type UnknownKindError struct {
	Kind domain.EntityKind
}

func (e UnknownKindError) Error() string {
	return fmt.Sprintf("unknown entity kind %q", e.Kind)
}

// Registry maps entity kinds to prototype constructors. It is a plain owned
// table: construct it, register kinds, pass it where needed. There is no
// package-level instance and no init-time mutation.
type Registry struct {
	prototypes map[domain.EntityKind]func() domain.Record
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{prototypes: make(map[domain.EntityKind]func() domain.Record)}
}

// Register binds a kind to its prototype constructor. Registering the same
// kind twice is rejected; the first binding wins and the caller is told.
func (r *Registry) Register(kind domain.EntityKind, proto func() domain.Record) error {
	if kind == "" {
		return fmt.Errorf("register: empty kind")
	}
	if proto == nil {
		return fmt.Errorf("register %s: nil prototype", kind)
	}
	if _, exists := r.prototypes[kind]; exists {
		return fmt.Errorf("register %s: already registered", kind)
	}
	r.prototypes[kind] = proto
	return nil
}

// Create instantiates a fresh zero-value record of the given kind.
func (r *Registry) Create(kind domain.EntityKind) (domain.Record, error) {
	proto, ok := r.prototypes[kind]
	if !ok {
		return nil, UnknownKindError{Kind: kind}
	}
	return proto(), nil
}

// Contains reports whether the kind is registered.
func (r *Registry) Contains(kind domain.EntityKind) bool {
	_, ok := r.prototypes[kind]
	return ok
}

// Kinds returns all registered kinds in lexical order.
func (r *Registry) Kinds() []domain.EntityKind {
	out := make([]domain.EntityKind, 0, len(r.prototypes))
	for kind := range r.prototypes {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Schema exports the registry as a persistence schema for snapshot decode.
func (r *Registry) Schema() memory.Schema {
	schema := make(memory.Schema, len(r.prototypes))
	for kind, proto := range r.prototypes {
		schema[kind] = proto
	}
	return schema
}

// DefaultRegistry constructs a registry with every built-in entity kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	mustRegister := func(kind domain.EntityKind, proto func() domain.Record) {
		if err := r.Register(kind, proto); err != nil {
			panic(err)
		}
	}

	mustRegister(domain.KindMaterial, func() domain.Record { return &domain.Material{} })
	mustRegister(domain.KindRawMaterial, func() domain.Record { return &domain.RawMaterial{} })
	mustRegister(domain.KindReferenceMaterial, func() domain.Record { return &domain.ReferenceMaterial{} })

	mustRegister(domain.KindHardnessScale, func() domain.Record { return &domain.HardnessScale{} })
	mustRegister(domain.KindShoreMeasurement, func() domain.Record { return &domain.ShoreMeasurement{} })
	mustRegister(domain.KindKrebsViscosity, func() domain.Record { return &domain.KrebsViscosity{} })
	mustRegister(domain.KindStormerMeasurement, func() domain.Record { return &domain.StormerMeasurement{} })
	mustRegister(domain.KindUltimateTensileStrength, func() domain.Record { return &domain.UltimateTensileStrength{} })
	mustRegister(domain.KindTensileMeasurement, func() domain.Record { return &domain.TensileMeasurement{} })
	mustRegister(domain.KindMFIValue, func() domain.Record { return &domain.MFIValue{} })
	mustRegister(domain.KindMFIMeasurement, func() domain.Record { return &domain.MFIMeasurement{} })
	mustRegister(domain.KindReferentialSpecificGravity, func() domain.Record { return &domain.ReferentialSpecificGravity{} })
	mustRegister(domain.KindPycnometerMeasurement, func() domain.Record { return &domain.PycnometerMeasurement{} })
	mustRegister(domain.KindHydrometerMeasurement, func() domain.Record { return &domain.HydrometerMeasurement{} })
	mustRegister(domain.KindDensityMeterMeasurement, func() domain.Record { return &domain.DensityMeterMeasurement{} })
	mustRegister(domain.KindCriticalSurfaceTension, func() domain.Record { return &domain.CriticalSurfaceTension{} })
	mustRegister(domain.KindContactAngleMeasurement, func() domain.Record { return &domain.ContactAngleMeasurement{} })
	mustRegister(domain.KindSurfaceTensionValue, func() domain.Record { return &domain.SurfaceTensionValue{} })
	mustRegister(domain.KindWilhelmyMeasurement, func() domain.Record { return &domain.WilhelmyMeasurement{} })
	mustRegister(domain.KindCoefficientOfThermalExpansion, func() domain.Record { return &domain.CoefficientOfThermalExpansion{} })
	mustRegister(domain.KindTMAMeasurement, func() domain.Record { return &domain.TMAMeasurement{} })
	mustRegister(domain.KindMeltingPointValue, func() domain.Record { return &domain.MeltingPointValue{} })
	mustRegister(domain.KindDSCMeltingMeasurement, func() domain.Record { return &domain.DSCMeltingMeasurement{} })
	mustRegister(domain.KindStorageModulus, func() domain.Record { return &domain.StorageModulus{} })
	mustRegister(domain.KindDMAMeasurement, func() domain.Record { return &domain.DMAMeasurement{} })
	mustRegister(domain.KindRheometerMeasurement, func() domain.Record { return &domain.RheometerMeasurement{} })

	mustRegister(domain.KindResolution, func() domain.Record { return &domain.Resolution{} })
	mustRegister(domain.KindPurpose, func() domain.Record { return &domain.Purpose{} })
	mustRegister(domain.KindMachinability, func() domain.Record { return &domain.Machinability{} })
	mustRegister(domain.KindPrintability, func() domain.Record { return &domain.Printability{} })
	mustRegister(domain.KindMoldFabrication, func() domain.Record { return &domain.MoldFabrication{} })
	mustRegister(domain.KindDevice, func() domain.Record { return &domain.Device{} })
	mustRegister(domain.KindSourcing, func() domain.Record { return &domain.Sourcing{} })

	mustRegister(domain.KindDataSource, func() domain.Record { return &domain.DataSource{} })
	mustRegister(domain.KindDataProvenance, func() domain.Record { return &domain.DataProvenance{} })

	mustRegister(domain.KindMaterialAdditive, func() domain.Record { return &domain.MaterialAdditive{} })
	mustRegister(domain.KindPropertyEffect, func() domain.Record { return &domain.PropertyEffect{} })
	mustRegister(domain.KindAdditiveCompatibility, func() domain.Record { return &domain.AdditiveCompatibility{} })
	mustRegister(domain.KindCompatibilizer, func() domain.Record { return &domain.Compatibilizer{} })

	mustRegister(domain.KindTargetMaterialProfile, func() domain.Record { return &domain.TargetMaterialProfile{} })
	mustRegister(domain.KindPropertyTarget, func() domain.Record { return &domain.PropertyTarget{} })
	mustRegister(domain.KindFormulation, func() domain.Record { return &domain.Formulation{} })
	mustRegister(domain.KindFormulationComponent, func() domain.Record { return &domain.FormulationComponent{} })
	mustRegister(domain.KindFormulationIntent, func() domain.Record { return &domain.FormulationIntent{} })

	return r
}
