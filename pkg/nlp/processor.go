package nlp

import (
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MinConfidence = 0.5

type NLPProcessor struct {
	mu         sync.RWMutex
	mappings   map[string]StructureMapping
	stopWords  map[string]bool
	categories map[string][]string
	ordinals   *OrdinalExtractor
}

func NewProcessor(mappings []StructureMapping) INLPProcessor {
	stopWords := map[string]bool{
		"the": true, "a": true, "an": true, "of": true, "in": true,
		"bone": true, "bones": true, "what": true, "is": true, "tell": true,
		"me": true, "about": true, "show": true, "describe": true,
	}

	categories := map[string][]string{
		"carpal":     {"wrist", "carpal", "carpus"},
		"metacarpal": {"palm", "metacarpal", "hand"},
		"phalanx":    {"finger", "phalanx", "phalange", "digit", "thumb"},
		"long_bone":  {"arm", "forearm", "elbow", "shoulder"},
		"skull":      {"head", "cranium", "skull", "face"},
		"ligament":   {"ligament", "joint", "connection"},
	}

	p := &NLPProcessor{
		mappings:   make(map[string]StructureMapping, len(mappings)),
		stopWords:  stopWords,
		categories: categories,
		ordinals:   NewOrdinalExtractor(),
	}
	for _, m := range mappings {
		p.AddMapping(m)
	}
	return p
}

// Resolve maps free text to the closest structure. Phrases equal to a name
// or synonym resolve with full confidence, everything else is scored on
// keywords and must reach MinConfidence.
func (nlp *NLPProcessor) Resolve(text string) (*MatchResult, bool) {
	clean := nlp.cleanText(text)
	if clean == "" {
		return nil, false
	}

	nlp.mu.RLock()
	defer nlp.mu.RUnlock()

	if m, ok := nlp.exactMatch(clean); ok {
		return m, true
	}

	tokens := nlp.extractTokens(clean)
	if len(tokens) == 0 {
		return nil, false
	}

	var results []*MatchResult
	for name, mapping := range nlp.mappings {
		conf := nlp.calculateConfidence(tokens, clean, mapping)
		if conf.Confidence >= MinConfidence {
			results = append(results, &MatchResult{
				Name:       name,
				Confidence: conf.Confidence,
				Matches:    conf.Matches,
			})
		}
	}
	if len(results) == 0 {
		return nil, false
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		return results[i].Name < results[j].Name
	})

	return results[0], true
}

func (nlp *NLPProcessor) exactMatch(clean string) (*MatchResult, bool) {
	var hits []string
	for name, mapping := range nlp.mappings {
		if nlp.cleanText(name) == clean {
			return &MatchResult{
				Name:       name,
				Confidence: 1,
				Matches:    []KeywordMatch{{Keyword: name, Score: 1, Type: "name"}},
			}, true
		}
		for _, synonym := range mapping.Synonyms {
			if nlp.cleanText(synonym) == clean {
				hits = append(hits, name)
				break
			}
		}
	}
	if len(hits) == 0 {
		return nil, false
	}

	sort.Strings(hits)
	return &MatchResult{
		Name:       hits[0],
		Confidence: 1,
		Matches:    []KeywordMatch{{Keyword: clean, Score: 1, Type: "synonym"}},
	}, true
}

func (nlp *NLPProcessor) calculateConfidence(tokens []string, fullText string, mapping StructureMapping) *confidenceResult {
	var matches []KeywordMatch
	totalScore := 0.0
	maxPossibleScore := 0.0

	for _, keyword := range mapping.Keywords {
		for _, token := range tokens {
			if token == keyword {
				matches = append(matches, KeywordMatch{Keyword: keyword, Score: 1, Type: "exact"})
				totalScore += 1.0
			}
		}
		maxPossibleScore += 1.0
	}

	for _, synonym := range mapping.Synonyms {
		similarity := nlp.calculateSimilarity(fullText, synonym)
		if similarity > 0.6 && similarity < 1.0 {
			matches = append(matches, KeywordMatch{Keyword: synonym, Score: similarity, Type: "synonym"})
			totalScore += similarity * 1.2
		}
	}

	for _, keyword := range mapping.Keywords {
		for _, token := range tokens {
			similarity := nlp.calculateSimilarity(token, keyword)
			if similarity > 0.5 && similarity < 1.0 {
				matches = append(matches, KeywordMatch{Keyword: keyword, Score: similarity * 0.7, Type: "fuzzy"})
				totalScore += similarity * 0.7
			}
		}
	}

	if len(matches) > 0 {
		totalScore += nlp.getCategoryBonus(tokens, mapping.Category)
	}

	confidence := totalScore / math.Max(maxPossibleScore, 1.0)
	if len(matches) > 1 {
		confidence *= 1.1
	}

	return &confidenceResult{
		Confidence: math.Min(confidence, 1.0),
		Matches:    matches,
	}
}

func (nlp *NLPProcessor) calculateSimilarity(text1, text2 string) float64 {
	norm1 := nlp.cleanText(text1)
	norm2 := nlp.cleanText(text2)

	if norm1 == norm2 {
		return 1.0
	}

	if strings.Contains(norm1, norm2) || strings.Contains(norm2, norm1) {
		shorter, longer := norm1, norm2
		if len(norm1) > len(norm2) {
			shorter, longer = norm2, norm1
		}
		return float64(len(shorter)) / float64(len(longer))
	}

	distance := levenshteinDistance(norm1, norm2)
	maxLen := math.Max(float64(len(norm1)), float64(len(norm2)))
	if maxLen == 0 {
		return 0.0
	}

	return math.Max(0, 1.0-(float64(distance)/maxLen))
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

func (nlp *NLPProcessor) getCategoryBonus(tokens []string, category string) float64 {
	keywords, exists := nlp.categories[category]
	if !exists {
		return 0.0
	}

	bonus := 0.0
	for _, token := range tokens {
		for _, keyword := range keywords {
			if token == keyword {
				bonus += 0.1
			}
		}
	}

	return math.Min(bonus, 0.3)
}

// cleanText lowercases, folds diacritics, canonicalises ordinals and turns
// punctuation into single spaces.
func (nlp *NLPProcessor) cleanText(text string) string {
	return strings.Join(nlp.ordinals.Canonicalize(words(text)), " ")
}

func (nlp *NLPProcessor) extractTokens(text string) []string {
	var tokens []string
	for _, word := range strings.Fields(text) {
		if !nlp.stopWords[word] {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func (nlp *NLPProcessor) GetMapping(name string) (StructureMapping, bool) {
	nlp.mu.RLock()
	defer nlp.mu.RUnlock()
	mapping, exists := nlp.mappings[name]
	return mapping, exists
}

func (nlp *NLPProcessor) GetAllMappings() []StructureMapping {
	nlp.mu.RLock()
	defer nlp.mu.RUnlock()

	out := make([]StructureMapping, 0, len(nlp.mappings))
	for _, m := range nlp.mappings {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddMapping registers a structure. Without explicit keywords the name's own
// tokens are used.
func (nlp *NLPProcessor) AddMapping(mapping StructureMapping) {
	if len(mapping.Keywords) == 0 {
		mapping.Keywords = nlp.extractTokens(nlp.cleanText(mapping.Name))
	} else {
		keywords := make([]string, 0, len(mapping.Keywords))
		for _, k := range mapping.Keywords {
			keywords = append(keywords, nlp.cleanText(k))
		}
		mapping.Keywords = keywords
	}

	nlp.mu.Lock()
	nlp.mappings[mapping.Name] = mapping
	nlp.mu.Unlock()
}

type confidenceResult struct {
	Confidence float64
	Matches    []KeywordMatch
}

// transformers keep state, so each call builds its own chain
func foldDiacritics() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func words(text string) []string {
	folded, _, err := transform.String(foldDiacritics(), strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}

	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
