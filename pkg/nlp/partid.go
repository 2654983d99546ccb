package nlp

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	partPrefixes = []string{"hand_", "bone_"}
	partSuffixes = []string{"_bone", "_mesh", "_part"}
	sidePrefixes = map[string]string{"left_": "left", "right_": "right"}
)

// NormalizePartID turns a client part identifier such as "Left_Hand_Scaphoid-Mesh"
// into a side and a lowercase, underscore separated part name.
func NormalizePartID(raw string) PartID {
	id := strings.Join(words(raw), "_")

	var side string
	for {
		trimmed := id
		for prefix, s := range sidePrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				side = s
				trimmed = strings.TrimPrefix(trimmed, prefix)
			}
		}
		for _, prefix := range partPrefixes {
			trimmed = strings.TrimPrefix(trimmed, prefix)
		}
		for _, suffix := range partSuffixes {
			trimmed = strings.TrimSuffix(trimmed, suffix)
		}
		if trimmed == id {
			break
		}
		id = trimmed
	}

	return PartID{Side: side, Part: id}
}

// Key is the cache and storage key for the part.
func (p PartID) Key() string {
	if p.Side == "" {
		return p.Part
	}
	return p.Side + "_" + p.Part
}

// DisplayName renders the part for people, e.g. "Left Index Proximal Phalanx".
func (p PartID) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(p.Key(), "_", " "))
}
