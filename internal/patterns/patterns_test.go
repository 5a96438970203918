package patterns

import "testing"

func TestAdd_Validation(t *testing.T) {
	if err := Add(Entry{}); err == nil {
		t.Error("expected error for entry without terms")
	}
	if err := Add(Entry{Terms: []string{"   "}}); err == nil {
		t.Error("expected error for blank term")
	}
}

func TestAdd_Defaults(t *testing.T) {
	if err := Add(Entry{Terms: []string{"zorbleflag"}}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	found := false
	for _, e := range EntriesFor(CategoryCustom) {
		for _, term := range e.Terms {
			if term == "zorbleflag" {
				found = true
				if e.Severity != 1 {
					t.Errorf("expected default severity 1, got %d", e.Severity)
				}
			}
		}
	}
	if !found {
		t.Error("added entry not found under custom category")
	}
}

func TestEntriesFor(t *testing.T) {
	for _, e := range EntriesFor(CategorySlang) {
		if e.Category != CategorySlang {
			t.Errorf("unexpected category %s in slang query", e.Category)
		}
	}
	if len(EntriesFor(CategorySlang)) == 0 {
		t.Error("expected built-in slang entries")
	}
}

func TestTermsFor(t *testing.T) {
	terms := TermsFor(CategorySlang)
	found := false
	for _, term := range terms {
		if term == "rizz" {
			found = true
		}
	}
	if !found {
		t.Error("expected rizz among slang terms")
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		word       string
		categories []Category
		want       bool
	}{
		{"idiot", []Category{CategoryOffensive}, true},
		{"IDIOT", []Category{CategoryOffensive}, true},
		{"  idiot  ", []Category{CategoryOffensive}, true},
		{"idiot", []Category{CategorySlang}, false},
		{"rizz", []Category{CategorySlang}, true},
		{"skibidi", []Category{CategoryMeme}, true},
		{"hello", []Category{CategoryOffensive, CategorySlang, CategoryMeme}, false},
		{"", []Category{CategoryOffensive}, false},
	}

	for _, tt := range tests {
		if got := Contains(tt.word, tt.categories...); got != tt.want {
			t.Errorf("Contains(%q, %v) = %v, want %v", tt.word, tt.categories, got, tt.want)
		}
	}
}

func TestSuggestions(t *testing.T) {
	// Canonical replacements the rest of the engine depends on.
	want := map[string]string{
		"rizz":      "charisma",
		"skibidi":   "dance",
		"rot-brain": "stupid",
	}

	for term, suggestion := range want {
		found := false
		for _, e := range Entries() {
			for _, et := range e.Terms {
				if et == term {
					found = true
					if e.Suggestion != suggestion {
						t.Errorf("term %q: expected suggestion %q, got %q", term, suggestion, e.Suggestion)
					}
				}
			}
		}
		if !found {
			t.Errorf("term %q not registered", term)
		}
	}
}
