package domain

// EffectIntent is the direction a property effect pushes a property in.
type EffectIntent string

const (
	EffectIncrease EffectIntent = "+"
	EffectDecrease EffectIntent = "-"
)

// MaterialAdditive is an ingredient used to modify properties of a base
// material. It references the underlying RawMaterial rather than duplicating
// its chemistry.
type MaterialAdditive struct {
	Base
	RawMaterialID RawMaterialID `json:"raw_material_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	// AdditiveForm is the physical form as dosed (powder, fiber, flake, liquid).
	AdditiveForm           string       `json:"additive_form"`
	MaxLoadingPercent      float64      `json:"max_loading_percent"`
	CompatibilizerRequired bool         `json:"compatibilizer_required"`
	ProvenanceID           ProvenanceID `json:"provenance_id,omitempty"`
}

// Kind implements Record.
func (MaterialAdditive) Kind() EntityKind { return KindMaterialAdditive }

// PropertyEffect records how an additive moves one named property.
type PropertyEffect struct {
	Base
	AdditiveID   AdditiveID   `json:"additive_id"`
	PropertyName string       `json:"property_name"`
	Intent       EffectIntent `json:"intent"`
	// NormalizedEffectStrength ranks the effect 0..1 independent of units.
	NormalizedEffectStrength float64 `json:"normalized_effect_strength"`
	// EffectPerWeightPercent quantifies the shift per weight percent dosed.
	EffectPerWeightPercent float64      `json:"effect_per_weight_percent"`
	EffectUnit             string       `json:"effect_unit"`
	TestConditions         string       `json:"test_conditions"`
	ProvenanceID           ProvenanceID `json:"provenance_id,omitempty"`
}

// Kind implements Record.
func (PropertyEffect) Kind() EntityKind { return KindPropertyEffect }

// AdditiveCompatibility pairs an additive with a base ingredient and records
// whether the combination works, and under what loading cap.
type AdditiveCompatibility struct {
	Base
	AdditiveID             AdditiveID       `json:"additive_id"`
	BaseMaterialID         RawMaterialID    `json:"base_material_id"`
	Compatible             bool             `json:"compatible"`
	RequiresCompatibilizer bool             `json:"requires_compatibilizer"`
	CompatibilizerID       CompatibilizerID `json:"compatibilizer_id,omitempty"`
	MaxLoadingWithBase     float64          `json:"max_loading_with_base"`
	Notes                  string           `json:"notes"`
	ProvenanceID           ProvenanceID     `json:"provenance_id,omitempty"`
}

// Kind implements Record.
func (AdditiveCompatibility) Kind() EntityKind { return KindAdditiveCompatibility }

// Compatibilizer is an ingredient that lets otherwise incompatible base and
// additive chemistries coexist in one formulation.
type Compatibilizer struct {
	Base
	RawMaterialID RawMaterialID `json:"raw_material_id"`
	Name          string        `json:"name"`
	// CompatibilizationType names the mechanism (emulsifier, coupling_agent,
	// dispersant, surfactant).
	CompatibilizationType string `json:"compatibilization_type"`
	// Effectiveness ranks the compatibilizer 0..1.
	Effectiveness           float64      `json:"effectiveness"`
	CompatibleBaseTypes     []string     `json:"compatible_base_types"`
	CompatibleAdditiveTypes []string     `json:"compatible_additive_types"`
	ProvenanceID            ProvenanceID `json:"provenance_id,omitempty"`
}

// Kind implements Record.
func (Compatibilizer) Kind() EntityKind { return KindCompatibilizer }
