package domain

// Sourcing records one way of obtaining a raw material. The three kinds
// share availability, cost, and sustainability fields; commercial sourcing
// additionally carries vendor and product information plus soft cross-links
// to the natural or open-source supply chain it industrializes. The
// cross-links are deliberately informal: a commercial source may coexist
// with natural and open-source routes for the same ingredient, and no
// relation table or exclusivity is enforced.
type Sourcing struct {
	Base
	RawMaterialID RawMaterialID `json:"raw_material_id"`
	Route         SourcingKind  `json:"route"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`

	// Availability.
	Availability         string  `json:"availability"`
	LeadTimeDays         int     `json:"lead_time_days"`
	MinimumOrderQty      float64 `json:"minimum_order_qty"`
	MinimumOrderUnit     string  `json:"minimum_order_unit"`
	EstimatedCostPerUnit float64 `json:"estimated_cost_per_unit"`
	CostUnit             string  `json:"cost_unit"`
	CostCurrency         string  `json:"cost_currency"`

	// Location.
	GeographicRegion string `json:"geographic_region"`
	LocallyAvailable bool   `json:"locally_available"`

	// Sustainability.
	SustainabilityRating string `json:"sustainability_rating"`
	RenewableSource      bool   `json:"renewable_source"`
	CarbonFootprint      string `json:"carbon_footprint"`

	// Quality.
	QualityConsistency string `json:"quality_consistency"`
	Certifications     string `json:"certifications"`

	// Commercial-only fields.
	VendorName       string `json:"vendor_name,omitempty"`
	VendorType       string `json:"vendor_type,omitempty"`
	VendorContact    string `json:"vendor_contact,omitempty"`
	VendorWebsite    string `json:"vendor_website,omitempty"`
	ProductName      string `json:"product_name,omitempty"`
	ProductCode      string `json:"product_code,omitempty"`
	ProductGrade     string `json:"product_grade,omitempty"`
	ProductionMethod string `json:"production_method,omitempty"`
	IsCommercialOnly bool   `json:"is_commercial_only,omitempty"`
	// NaturalSourcingID and OpenSourceSourcingID soft-link the non-commercial
	// routes a commercial product is derived from, when known.
	NaturalSourcingID    SourcingID `json:"natural_sourcing_id,omitempty"`
	OpenSourceSourcingID SourcingID `json:"open_source_sourcing_id,omitempty"`
	// TechnicalDataSheetKey and SafetyDataSheetKey reference attachment blobs.
	TechnicalDataSheetKey string `json:"technical_data_sheet_key,omitempty"`
	SafetyDataSheetKey    string `json:"safety_data_sheet_key,omitempty"`

	Notes string `json:"notes"`
}

// NewSourcing constructs a sourcing record of the given kind for a raw
// material.
func NewSourcing(rawMaterialID RawMaterialID, kind SourcingKind) *Sourcing {
	return &Sourcing{
		RawMaterialID:        rawMaterialID,
		Route:                kind,
		Availability:         "common",
		MinimumOrderUnit:     "kg",
		CostUnit:             "kg",
		CostCurrency:         "USD",
		SustainabilityRating: "fair",
		QualityConsistency:   "moderate",
	}
}

// Kind implements Record.
func (Sourcing) Kind() EntityKind { return KindSourcing }

// SourcingRoute returns the record's sourcing route.
func (s *Sourcing) SourcingRoute() SourcingKind { return s.Route }
