package domain

// TargetMaterialProfile names a desired property envelope (for example
// "rigid machinable stock" or "flexible print filament"). The individual
// property goals live in PropertyTarget records that point back at the
// profile.
type TargetMaterialProfile struct {
	Base
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	PurposeID           PurposeID           `json:"purpose_id,omitempty"`
	ReferenceMaterialID ReferenceMaterialID `json:"reference_material_id,omitempty"`
}

// Kind implements Record.
func (TargetMaterialProfile) Kind() EntityKind { return KindTargetMaterialProfile }

// PropertyTarget is one property goal inside a profile: an optimum, a soft
// acceptable range around it, and hard bounds outside of which a candidate
// is rejected outright.
type PropertyTarget struct {
	Base
	ProfileID       ProfileID `json:"profile_id"`
	PropertyName    string    `json:"property_name"`
	OptimumValue    float64   `json:"optimum_value"`
	OptimumRangeMin float64   `json:"optimum_range_min"`
	OptimumRangeMax float64   `json:"optimum_range_max"`
	HardMinimum     float64   `json:"hard_minimum"`
	HardMaximum     float64   `json:"hard_maximum"`
	// Weight ranks this target 0..1 against the profile's other targets.
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
}

// Kind implements Record.
func (PropertyTarget) Kind() EntityKind { return KindPropertyTarget }
