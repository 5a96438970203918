package normalize

import (
	"strings"
	"unicode"
)

// leet maps common digit/symbol homoglyphs to the letters they stand in for.
var leet = map[rune]rune{
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'@': 'a',
	'$': 's',
}

// Normalize applies the canonical pre-processing pass: leetspeak folding on
// tokens that mix homoglyphs with letters, then whitespace collapsing.
// Case is preserved so capitalization-aware transforms still see the
// original casing. Empty input returns empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	fields := strings.Fields(text)
	for i, token := range fields {
		fields[i] = foldLeet(token)
	}
	return strings.Join(fields, " ")
}

// foldLeet substitutes homoglyphs in a single token. The substitution only
// applies when the token already contains at least one letter and the folded
// result is dictionary-plausible (letters and apostrophes only, ignoring
// surrounding punctuation), so standalone numerals survive untouched.
func foldLeet(token string) string {
	hasLetter := false
	hasHomoglyph := false
	for _, r := range token {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if _, ok := leet[r]; ok {
			hasHomoglyph = true
		}
	}
	if !hasLetter || !hasHomoglyph {
		return token
	}

	core, prefix, suffix := trimPunct(token)
	if core == "" {
		return token
	}

	folded := make([]rune, 0, len(core))
	for _, r := range core {
		if sub, ok := leet[r]; ok {
			folded = append(folded, sub)
			continue
		}
		folded = append(folded, r)
	}
	for _, r := range folded {
		if !unicode.IsLetter(r) && r != '\'' {
			return token
		}
	}
	return prefix + string(folded) + suffix
}

// trimPunct splits a token into leading punctuation, core, and trailing
// punctuation. Leet homoglyphs count as core even though '@' and '$' are
// symbols.
func trimPunct(token string) (core, prefix, suffix string) {
	runes := []rune(token)
	start := 0
	for start < len(runes) && !isCore(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && !isCore(runes[end-1]) {
		end--
	}
	return string(runes[start:end]), string(runes[:start]), string(runes[end:])
}

func isCore(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	_, ok := leet[r]
	return ok
}

// Fold returns the comparison form of text: normalized, lowercased, with
// apostrophes dropped and all other punctuation replaced by spaces, then
// collapsed. Detectors match keywords against this form.
func Fold(text string) string {
	text = strings.ToLower(Normalize(text))

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\'' || r == '’':
			// drop: "what's" folds to "whats"
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
