package nlp

import "strings"

type OrdinalExtractor struct {
	ordinals map[string]string
}

func NewOrdinalExtractor() *OrdinalExtractor {
	return &OrdinalExtractor{
		ordinals: map[string]string{
			"first":  "1st",
			"second": "2nd",
			"ii":     "2nd",
			"third":  "3rd",
			"iii":    "3rd",
			"fourth": "4th",
			"iv":     "4th",
			"fifth":  "5th",
		},
	}
}

// Canonicalize rewrites spelled-out and roman ordinals so that "second
// metacarpal" and "2nd metacarpal" produce the same tokens.
func (oe *OrdinalExtractor) Canonicalize(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		if canon, ok := oe.ordinals[strings.ToLower(w)]; ok {
			out[i] = canon
			continue
		}
		out[i] = w
	}
	return out
}
