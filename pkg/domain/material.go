package domain

// Material is the foundational record representing an actual material.
// Properties, resolutions, purposes, and sourcing records attach to it via
// MaterialID soft references; the material itself carries only descriptive
// metadata.
type Material struct {
	Base
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Manufacturer string `json:"manufacturer"`
	TradeName    string `json:"trade_name"`
	CAS          string `json:"cas"`
	Notes        string `json:"notes"`
}

// Kind implements Record.
func (Material) Kind() EntityKind { return KindMaterial }

// RawMaterial describes an ingredient-level material (base polymer, filler,
// fiber, ...) that formulations and additives are built from.
type RawMaterial struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description"`
	// MaterialType classifies the ingredient (polymer, mineral, fiber, ...).
	MaterialType    string `json:"material_type"`
	ChemicalName    string `json:"chemical_name"`
	ChemicalFormula string `json:"chemical_formula"`
	CASNumber       string `json:"cas_number"`
	PhysicalForm    string `json:"physical_form"`
	ParticleSize    string `json:"particle_size"`
	AspectRatio     string `json:"aspect_ratio"`
	// Purity is a percentage; Grade is a free-form quality tier.
	Purity            float64 `json:"purity"`
	Grade             string  `json:"grade"`
	ShelfLifeMonths   int     `json:"shelf_life_months"`
	StorageConditions string  `json:"storage_conditions"`
	MoistureSensitive bool    `json:"moisture_sensitive"`
	// SourcingIDs soft-links every known way of obtaining the ingredient.
	SourcingIDs     []SourcingID `json:"sourcing_ids"`
	ProcessingNotes string       `json:"processing_notes"`
	// Role capability flags for the formulation planner.
	CanBeBase           bool `json:"can_be_base"`
	CanBeAdditive       bool `json:"can_be_additive"`
	CanBeCompatibilizer bool `json:"can_be_compatibilizer"`
}

// Kind implements Record.
func (RawMaterial) Kind() EntityKind { return KindRawMaterial }

// ReferenceMaterial is a curated literature-backed material entry (PLA, ABS,
// PETG, ...) used as a comparison baseline for measured materials.
type ReferenceMaterial struct {
	Base
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	ChemicalFormula string `json:"chemical_formula"`
	CASNumber       string `json:"cas_number"`
	MaterialFamily  string `json:"material_family"`
	PolymerType     string `json:"polymer_type"`
	// Printable fills in FDM process guidance when the reference entry is a
	// common 3D printing feedstock.
	Printable          bool    `json:"printable"`
	NozzleTempMinC     float64 `json:"nozzle_temp_min_c,omitempty"`
	NozzleTempMaxC     float64 `json:"nozzle_temp_max_c,omitempty"`
	BedTempC           float64 `json:"bed_temp_c,omitempty"`
	Biodegradable      bool    `json:"biodegradable"`
	FoodSafe           bool    `json:"food_safe"`
	UVResistant        bool    `json:"uv_resistant"`
	ChemicalResistance string  `json:"chemical_resistance"`
	// SourceCount tracks how many literature sources back the entry.
	SourceCount int    `json:"source_count"`
	Notes       string `json:"notes"`
}

// Kind implements Record.
func (ReferenceMaterial) Kind() EntityKind { return KindReferenceMaterial }
