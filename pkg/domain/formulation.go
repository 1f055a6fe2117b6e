package domain

// ComponentRole declares what a component contributes to a recipe.
type ComponentRole string

const (
	RoleBase           ComponentRole = "base"
	RoleAdditive       ComponentRole = "additive"
	RoleCompatibilizer ComponentRole = "compatibilizer"
)

// IntentDirection is the way a formulation wants a property to move.
type IntentDirection string

const (
	DirectionIncrease IntentDirection = "increase"
	DirectionDecrease IntentDirection = "decrease"
	DirectionMaintain IntentDirection = "maintain"
)

// IntentPriority ranks how important a formulation intent is.
type IntentPriority string

const (
	PriorityCritical   IntentPriority = "critical"
	PriorityImportant  IntentPriority = "important"
	PriorityNiceToHave IntentPriority = "nice_to_have"
)

// Formulation is a composite material recipe aimed at a target profile.
// Its ingredient list lives in FormulationComponent records that point back
// at it.
type Formulation struct {
	Base
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	TargetProfileID ProfileID     `json:"target_profile_id,omitempty"`
	BaseMaterialID  RawMaterialID `json:"base_material_id"`
	// TotalAdditiveLoadPercent is the summed weight percent of everything
	// that is not the base.
	TotalAdditiveLoadPercent float64      `json:"total_additive_load_percent"`
	ProvenanceID             ProvenanceID `json:"provenance_id,omitempty"`
}

// Kind implements Record.
func (Formulation) Kind() EntityKind { return KindFormulation }

// FormulationComponent is one ingredient line of a recipe, with an explicit
// role declaration and processing order.
type FormulationComponent struct {
	Base
	FormulationID      FormulationID `json:"formulation_id"`
	MaterialID         RawMaterialID `json:"material_id"`
	Role               ComponentRole `json:"role"`
	RoleJustification  string        `json:"role_justification"`
	WeightPercent      float64       `json:"weight_percent"`
	OrderOfAddition    int           `json:"order_of_addition"`
	MixingInstructions string        `json:"mixing_instructions"`
	// ExpectedPropertyEffects names the properties this component is in the
	// recipe to move.
	ExpectedPropertyEffects []string `json:"expected_property_effects"`
}

// Kind implements Record.
func (FormulationComponent) Kind() EntityKind { return KindFormulationComponent }

// FormulationIntent states one desired property direction for a recipe.
type FormulationIntent struct {
	Base
	FormulationID FormulationID   `json:"formulation_id"`
	PropertyName  string          `json:"property_name"`
	Direction     IntentDirection `json:"direction"`
	Priority      IntentPriority  `json:"priority"`
}

// Kind implements Record.
func (FormulationIntent) Kind() EntityKind { return KindFormulationIntent }
