package openai

import "testing"

func TestParsePartDocument(t *testing.T) {
	doc := ParsePartDocument("lunate", `{"name":"Lunate","location":"proximal carpal row"}`)
	if doc["name"] != "Lunate" || doc["location"] != "proximal carpal row" {
		t.Errorf("unexpected document %v", doc)
	}

	fallback := ParsePartDocument("lunate", "The lunate is a carpal bone.")
	if fallback["name"] != "lunate" || fallback["description"] != "The lunate is a carpal bone." {
		t.Errorf("unexpected fallback %v", fallback)
	}

	empty := ParsePartDocument("lunate", "{}")
	if empty["name"] != "lunate" {
		t.Errorf("empty object should fall back, got %v", empty)
	}
}
