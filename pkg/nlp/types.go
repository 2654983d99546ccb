package nlp

// StructureMapping is one resolvable anatomical structure. Name is the
// canonical display name, Keywords are scored per token and Synonyms are
// whole phrases that resolve to Name.
type StructureMapping struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Synonyms []string `json:"synonyms"`
	Category string   `json:"category"`
}

type MatchResult struct {
	Name       string         `json:"name"`
	Confidence float64        `json:"confidence"`
	Matches    []KeywordMatch `json:"matches"`
}

type KeywordMatch struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
	Type    string  `json:"type"`
}

type INLPProcessor interface {
	Resolve(text string) (*MatchResult, bool)
	GetMapping(name string) (StructureMapping, bool)
	GetAllMappings() []StructureMapping
	AddMapping(mapping StructureMapping)
}

// PartID is a lookup key for a single part, with the hand side split off.
type PartID struct {
	Side string `json:"side,omitempty"`
	Part string `json:"part"`
}
