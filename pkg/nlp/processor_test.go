package nlp

import "testing"

func testMappings() []StructureMapping {
	return []StructureMapping{
		{Name: "Scaphoid", Category: "carpal", Synonyms: []string{"navicular"}},
		{Name: "Lunate", Category: "carpal"},
		{Name: "2nd Metacarpal (Index)", Category: "metacarpal"},
		{Name: "3rd Metacarpal (Middle)", Category: "metacarpal"},
		{Name: "Index Proximal Phalanx", Category: "phalanx"},
		{Name: "Index Distal Phalanx", Category: "phalanx"},
		{Name: "Right Humerus (Upper Arm)", Category: "long_bone", Synonyms: []string{"humerus", "upper arm bone"}},
		{Name: "Left Humerus (Upper Arm)", Category: "long_bone", Synonyms: []string{"humerus", "upper arm bone"}},
	}
}

func TestResolve(t *testing.T) {
	p := NewProcessor(testMappings())

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"Scaphoid", "Scaphoid", true},
		{"  scaphoid BONE ", "Scaphoid", true},
		{"the scafoid", "Scaphoid", true},
		{"Navicular", "Scaphoid", true},
		{"second metacarpal", "2nd Metacarpal (Index)", true},
		{"index distal phalanx", "Index Distal Phalanx", true},
		{"distal phalanx of the index finger", "Index Distal Phalanx", true},
		{"humerus", "Left Humerus (Upper Arm)", true},
		{"Right Humerus (Upper Arm)", "Right Humerus (Upper Arm)", true},
		{"femur", "", false},
		{"wrist", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := p.Resolve(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v (got %+v)", tt.input, ok, tt.wantOK, got)
			}
			if ok && got.Name != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got.Name, tt.want)
			}
		})
	}
}

func TestAddMappingDerivesKeywords(t *testing.T) {
	p := NewProcessor(nil)
	p.AddMapping(StructureMapping{Name: "Hamate", Category: "carpal"})

	m, ok := p.GetMapping("Hamate")
	if !ok {
		t.Fatal("mapping not stored")
	}
	if len(m.Keywords) != 1 || m.Keywords[0] != "hamate" {
		t.Errorf("keywords = %v", m.Keywords)
	}
	if len(p.GetAllMappings()) != 1 {
		t.Errorf("GetAllMappings = %v", p.GetAllMappings())
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "abc", 3},
		{"scaphoid", "scaphoid", 0},
		{"scafoid", "scaphoid", 2},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizePartID(t *testing.T) {
	tests := []struct {
		raw  string
		want PartID
		key  string
		name string
	}{
		{"scaphoid", PartID{Part: "scaphoid"}, "scaphoid", "Scaphoid"},
		{"left_scaphoid", PartID{Side: "left", Part: "scaphoid"}, "left_scaphoid", "Left Scaphoid"},
		{"Right_Hand_Index_Proximal_Phalanx_Mesh", PartID{Side: "right", Part: "index_proximal_phalanx"}, "right_index_proximal_phalanx", "Right Index Proximal Phalanx"},
		{"hand_lunate_bone", PartID{Part: "lunate"}, "lunate", "Lunate"},
		{"bone-capitate part", PartID{Part: "capitate"}, "capitate", "Capitate"},
		{"Trapèzium", PartID{Part: "trapezium"}, "trapezium", "Trapezium"},
		{"___", PartID{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizePartID(tt.raw)
			if got != tt.want {
				t.Fatalf("NormalizePartID(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
			if got.Key() != tt.key {
				t.Errorf("Key() = %q, want %q", got.Key(), tt.key)
			}
			if got.DisplayName() != tt.name {
				t.Errorf("DisplayName() = %q, want %q", got.DisplayName(), tt.name)
			}
		})
	}
}
