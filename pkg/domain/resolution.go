package domain

// ResolutionVariant identifies the concrete modeling approach of a
// resolution record within its scale.
type ResolutionVariant string

// Resolution variants per scale. Experimental and continuum scales carry
// several approaches; the finer scales map one-to-one.
const (
	// VariantRawExperimental records direct laboratory characterization.
	VariantRawExperimental ResolutionVariant = "raw_experimental"
	// VariantRulesOfMixtures estimates composite behavior from constituents.
	VariantRulesOfMixtures ResolutionVariant = "rules_of_mixtures"
	// VariantConsistentFEM uses uniform continuum constants.
	VariantConsistentFEM ResolutionVariant = "consistent_fem"
	// VariantStochasticFEM samples continuum constants from distributions.
	VariantStochasticFEM ResolutionVariant = "stochastic_fem"
	// VariantChosen pins a single parameter set chosen from a range study.
	VariantChosen ResolutionVariant = "chosen"
	// VariantRange sweeps a parameter range for sensitivity studies.
	VariantRange ResolutionVariant = "range"
	// VariantCGMD is a coarse-grained molecular dynamics bead model.
	VariantCGMD ResolutionVariant = "cgmd"
	// VariantMD is a classical molecular dynamics force-field model.
	VariantMD ResolutionVariant = "md"
	// VariantDFT is a density functional theory model.
	VariantDFT ResolutionVariant = "dft"
)

// Resolution defines how a material is represented at one simulation scale.
// The same material may carry several resolution records concurrently, one
// per scale, each holding the inputs a solver at that scale consumes. This
// layer records simulation metadata only; it never runs a solver.
type Resolution struct {
	Base
	MaterialID  MaterialID        `json:"material_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Scale       ResolutionScale   `json:"scale"`
	Variant     ResolutionVariant `json:"variant"`

	// Continuum (FEM) constants.
	YoungsModulusMPa       float64 `json:"youngs_modulus_mpa,omitempty"`
	PoissonsRatio          float64 `json:"poissons_ratio,omitempty"`
	DensityGPerCm3         float64 `json:"density_g_per_cm3,omitempty"`
	ThermalConductivityWmK float64 `json:"thermal_conductivity_wmk,omitempty"`
	SpecificHeatJPerKgK    float64 `json:"specific_heat_j_per_kgk,omitempty"`
	ThermalExpansionPpmC   float64 `json:"thermal_expansion_ppm_c,omitempty"`

	// Mesoscale (CGMD) bead model.
	BeadMappingRatio    float64 `json:"bead_mapping_ratio,omitempty"`
	CoarseGrainModel    string  `json:"coarse_grain_model,omitempty"`
	BeadInteractionForm string  `json:"bead_interaction_form,omitempty"`

	// Atomistic (MD) force field.
	ForceField     string  `json:"force_field,omitempty"`
	TimestepFs     float64 `json:"timestep_fs,omitempty"`
	EnsembleType   string  `json:"ensemble_type,omitempty"`
	CutoffAngstrom float64 `json:"cutoff_angstrom,omitempty"`

	// Quantum (DFT) model.
	Functional   string  `json:"functional,omitempty"`
	BasisSet     string  `json:"basis_set,omitempty"`
	KPointMesh   string  `json:"k_point_mesh,omitempty"`
	CutoffEnergy float64 `json:"cutoff_energy_ev,omitempty"`
}

// NewResolution constructs a resolution record for a material at a scale.
func NewResolution(materialID MaterialID, scale ResolutionScale, variant ResolutionVariant) *Resolution {
	return &Resolution{
		MaterialID: materialID,
		Scale:      scale,
		Variant:    variant,
	}
}

// Kind implements Record.
func (Resolution) Kind() EntityKind { return KindResolution }

// Level reports the numeric scale level of the record (0=experimental up to
// 4=quantum). The level is a function of the scale enum, never stored.
func (r *Resolution) Level() int { return r.Scale.Level() }
