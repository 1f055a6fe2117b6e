package domain

// CredibilityLevel ranks how trustworthy a provenance record is.
type CredibilityLevel string

const (
	CredibilityVerified           CredibilityLevel = "verified"
	CredibilityPeerReviewed       CredibilityLevel = "peer_reviewed"
	CredibilityManufacturerStated CredibilityLevel = "manufacturer_stated"
	CredibilityCommunityConsensus CredibilityLevel = "community_consensus"
	CredibilityUnverified         CredibilityLevel = "unverified"
)

// SourceType classifies where a citation's data originally came from.
type SourceType string

const (
	SourceLLMGenerated          SourceType = "llm_generated"
	SourceResearchPaper         SourceType = "research_paper"
	SourceManufacturerDatasheet SourceType = "manufacturer_datasheet"
	SourceExperimentalTesting   SourceType = "experimental_testing"
	SourceCommunityMeasurement  SourceType = "community_measurement"
	SourcePersonalObservation   SourceType = "personal_observation"
)

// DataSource is an individual citation: a paper, datasheet, community
// measurement, or observation that backs one or more provenance records.
type DataSource struct {
	Base
	SourceType SourceType `json:"source_type"`
	Name       string     `json:"name"`
	// Reference holds a URL, DOI, or ISBN.
	Reference string `json:"reference"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}

// Kind implements Record.
func (DataSource) Kind() EntityKind { return KindDataSource }

// DataProvenance is the credibility envelope any catalogue record can point
// at. It aggregates one or more DataSource citations under a single
// credibility level.
type DataProvenance struct {
	Base
	Version          string           `json:"version"`
	CredibilityLevel CredibilityLevel `json:"credibility_level"`
	SourceIDs        []SourceID       `json:"source_ids"`
	Notes            string           `json:"notes"`
}

// Kind implements Record.
func (DataProvenance) Kind() EntityKind { return KindDataProvenance }

// NewDataProvenance applies the unverified default when no level is given.
func NewDataProvenance(version string, level CredibilityLevel, sourceIDs []SourceID, notes string) *DataProvenance {
	if level == "" {
		level = CredibilityUnverified
	}
	return &DataProvenance{
		Version:          version,
		CredibilityLevel: level,
		SourceIDs:        sourceIDs,
		Notes:            notes,
	}
}
