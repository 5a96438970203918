package style

import (
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	text := "Hello world. How are you? Fine!"
	got := SplitSentences(text)

	want := []Sentence{
		{Text: "Hello world.", Start: 0, End: 12},
		{Text: "How are you?", Start: 13, End: 25},
		{Text: "Fine!", Start: 26, End: 31},
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitSentences_EdgeCases(t *testing.T) {
	if got := SplitSentences(""); len(got) != 0 {
		t.Errorf("expected no sentences for empty input, got %d", len(got))
	}

	got := SplitSentences("No terminator here")
	if len(got) != 1 || got[0].Text != "No terminator here" {
		t.Errorf("unterminated text should be one sentence, got %+v", got)
	}

	got = SplitSentences("  padded.  ")
	if len(got) != 1 || got[0].Text != "padded." || got[0].Start != 2 {
		t.Errorf("unexpected result for padded input: %+v", got)
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "neutral"},
		{"concise", "Hi. Go now. Yes.", "concise"},
		{"neutral", "This sentence has exactly eight words in it.", "neutral"},
		{"verbose", "This single extremely long sentence keeps going on and on with many additional words padding it out well past the twenty word threshold for verbosity.", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.text); got != tt.want {
				t.Errorf("Analyze(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestPassiveRatio(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"active", "John threw the ball.", 0},
		{"passive irregular", "The ball was thrown by John.", 100},
		{"passive ed", "The cake was baked yesterday.", 100},
		{"half", "The ball was thrown. John caught it.", 50},
		{"short ed word ignored", "The sky was red.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PassiveRatio(tt.text); got != tt.want {
				t.Errorf("PassiveRatio(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(""); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}

	if got := Summarize("Only one sentence here."); got != "Only one sentence here." {
		t.Errorf("single sentence should stand alone, got %q", got)
	}

	text := "The weather is fine. Solar energy is the future. Solar energy powers homes."
	want := "The weather is fine. Solar energy powers homes."
	if got := Summarize(text); got != want {
		t.Errorf("Summarize = %q, want %q", got, want)
	}
}

func TestExtractKeySentence(t *testing.T) {
	text := "The weather is fine. Solar energy is the future. Solar energy powers homes."
	if got := ExtractKeySentence(text); got != "Solar energy powers homes." {
		t.Errorf("ExtractKeySentence = %q", got)
	}

	if got := ExtractKeySentence(""); got != "" {
		t.Errorf("expected empty key sentence, got %q", got)
	}
}

func TestReflow(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"zero width unchanged", "a b c", 0, "a b c"},
		{"negative width unchanged", "a b c", -3, "a b c"},
		{"empty", "", 10, ""},
		{"basic wrap", "one two three four", 9, "one two\nthree\nfour"},
		{"single long word overflows", "extraordinary", 5, "extraordinary"},
		{"exact fit", "ab cd", 5, "ab cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflow(tt.text, tt.width); got != tt.want {
				t.Errorf("Reflow(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestReflow_LineWidths(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog near the riverbank"
	for _, line := range strings.Split(Reflow(text, 20), "\n") {
		if len(line) > 20 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode CapMode
		want string
	}{
		{"upper", "hello World", CapUpper, "HELLO WORLD"},
		{"lower", "Hello World", CapLower, "hello world"},
		{"title", "hello world twice", CapTitle, "Hello World Twice"},
		{"sentence", "hello. how are you? fine.", CapSentence, "Hello. How are you? Fine."},
		{"sentence keeps caps", "HELLO. wait.", CapSentence, "HELLO. Wait."},
		{"empty", "", CapTitle, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Capitalize(tt.text, tt.mode); got != tt.want {
				t.Errorf("Capitalize(%q, %d) = %q, want %q", tt.text, tt.mode, got, tt.want)
			}
		})
	}
}
