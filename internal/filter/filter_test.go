package filter

import (
	"strings"
	"testing"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		patterns string
		input    string
		want     string
	}{
		{"empty text", "loser", "", ""},
		{"no patterns", "", "hello world", "hello world"},
		{"literal match", "loser", "you loser", "you *****"},
		{"glob matches both", "lo*er", "the loser and the lover", "the ***** and the *****"},
		{"case insensitive", "loser", "you LOSER", "you *****"},
		{"punctuation preserved", "loser", "loser!", "*****!"},
		{"multiple patterns", "idiot,loser", "idiot or loser", "***** or *****"},
		{"no match", "loser", "fine words only", "fine words only"},
		{"spacing preserved", "loser", "a  loser\there", "a  *****\there"},
		{"star alone masks everything", "*", "a bb ccc", "* ** ***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filter(tt.patterns, tt.input); got != tt.want {
				t.Errorf("Filter(%q, %q) = %q, want %q", tt.patterns, tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single insult", "You are an idiot.", "You are an *****."},
		{"mask length equals term length", "rot-brain", "*********"},
		{"case insensitive", "What an IDIOT move", "What an ***** move"},
		{"slang masked", "That rizz is unreal", "That **** is unreal"},
		{"meme masked", "skibidi time", "******* time"},
		{"inside larger word untouched", "sustain the suspense", "sustain the suspense"},
		{"multi word phrase", "Well, shut up already", "Well, **** ** already"},
		{"three word phrase", "nobody likes you, pal", "****** ***** ***, pal"},
		{"clean text unchanged", "A perfectly nice day.", "A perfectly nice day."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_PreservesTokenCount(t *testing.T) {
	inputs := []string{
		"Well, shut up already",
		"nobody likes you, pal",
		"you idiot, that was a sus move",
		"plain harmless words",
	}

	for _, input := range inputs {
		got := Sanitize(input)
		if len(strings.Fields(got)) != len(strings.Fields(input)) {
			t.Errorf("token count changed for %q: got %q", input, got)
		}
	}
}

func TestSanitize_PreservesLength(t *testing.T) {
	input := "you idiot, that was a sus move"
	got := Sanitize(input)
	if len(got) != len(input) {
		t.Errorf("sanitized length %d differs from input length %d", len(got), len(input))
	}
	if strings.Contains(got, "idiot") || strings.Contains(got, "sus") {
		t.Errorf("flagged terms survived sanitization: %q", got)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"rizz", "That rizz is real.", "That charisma is real."},
		{"case carried", "Rizz is everything.", "Charisma is everything."},
		{"skibidi", "Pure skibidi energy.", "Pure dance energy."},
		{"rot-brain", "Total rot-brain take.", "Total stupid take."},
		{"alias rotbrain", "rotbrain content", "stupid content"},
		{"phrase", "no cap, it works", "honestly, it works"},
		{"no suggestions", "Nothing to change here.", "Nothing to change here."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(tt.input); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddCustomFilter(t *testing.T) {
	if err := AddCustomFilter("   "); err == nil {
		t.Error("expected error for blank term")
	}

	if err := AddCustomFilter("vendorx"); err != nil {
		t.Fatalf("AddCustomFilter failed: %v", err)
	}

	got := Sanitize("vendorx shipped it")
	if got != "******* shipped it" {
		t.Errorf("custom term not masked: %q", got)
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"loser", "loser", true},
		{"lo*er", "loser", true},
		{"lo*er", "lover", true},
		{"lo*er", "loud", false},
		{"*", "anything", true},
		{"*", "", true},
		{"a*b*c", "aXbYc", true},
		{"a*b*c", "ac", false},
		{"abc", "ab", false},
	}

	for _, tt := range tests {
		if got := matchGlob(tt.pattern, tt.s); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.s, got, tt.want)
		}
	}
}
