package grammar

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"clean", "I should have gone home.", 0},
		{"should of", "I should of gone.", 1},
		{"two faults", "Me and him should of went.", 2},
		{"double negative", "I don't know nothing about it.", 1},
		{"could care less", "I could care less.", 1},
		{"irregardless", "Irregardless, we continue.", 1},
		{"alot", "Thanks alot.", 1},
		{"alot inside word ignored", "The zealots marched.", 0},
		{"me and without object", "me and", 0},
		{"subject verb", "They was late and you is wrong.", 2},
		{"leet folded first", "You 5hould of known.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.text); got != tt.want {
				t.Errorf("Check(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCorrect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"clean unchanged", "Everything is fine here.", "Everything is fine here."},
		{"pronoun swap", "Me and him should of went.", "He and I should have went."},
		{"pronoun swap lowercase", "me and her walked home", "she and I walked home"},
		{"pronoun swap them", "Me and them agree.", "They and I agree."},
		{"pronoun swap noun", "Me and Jordan left early.", "Jordan and I left early."},
		{"could of", "You could of called.", "You could have called."},
		{"she dont", "She don't care.", "She doesn't care."},
		{"double negative", "I don't know nothing.", "I don't know anything."},
		{"could care less", "I could care less, irregardless.", "I couldn't care less, regardless."},
		{"supposably", "Supposably it works.", "Supposedly it works."},
		{"intensive purposes", "For all intensive purposes, done.", "For all intents and purposes, done."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Correct(tt.input); got != tt.want {
				t.Errorf("Correct(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCorrect_LeavesDisguisedTriggersAsWritten(t *testing.T) {
	input := "You 5hould of known."

	if n := Check(input); n != 1 {
		t.Errorf("Check(%q) = %d, want 1", input, n)
	}
	if got := Correct(input); got != input {
		t.Errorf("Correct(%q) = %q, want input unchanged", input, got)
	}
}

func TestCorrect_Idempotent(t *testing.T) {
	inputs := []string{
		"Me and him should of went.",
		"I could care less.",
		"They was here and you was there.",
	}

	for _, input := range inputs {
		once := Correct(input)
		twice := Correct(once)
		if once != twice {
			t.Errorf("Correct not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestCorrect_NoTriggersRemain(t *testing.T) {
	corrected := Correct("Me and him should of went because they was tired.")
	if n := Check(corrected); n != 0 {
		t.Errorf("corrected text still has %d faults: %q", n, corrected)
	}
}
