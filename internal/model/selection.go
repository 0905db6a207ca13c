package model

// SelectionMode chooses between the two selection paths
type SelectionMode string

const (
	// ModeStandard runs the full catalog-driven pipeline
	// (eligibility → relevance scoring → diversity selection)
	ModeStandard SelectionMode = "standard"
	// ModeMix runs the weighted rotation strategy over the curated pool
	ModeMix SelectionMode = "mix"
)

// ParseSelectionMode maps a request string onto a mode, defaulting to standard
func ParseSelectionMode(s string) SelectionMode {
	if s == string(ModeMix) {
		return ModeMix
	}
	return ModeStandard
}

// ScoredTemplate pairs a template with its relevance score. Transient:
// produced and consumed within a single selection call.
type ScoredTemplate struct {
	Template *QuestionTemplate
	Score    float64
}

// ResolvedQuestion is one selected question with its final phrasing
type ResolvedQuestion struct {
	TemplateID string   `json:"templateId"`
	Category   Category `json:"category"`
	Text       string   `json:"text"`
}
