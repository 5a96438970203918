package grammar

import (
	"strings"
	"unicode"

	"github.com/textsoap/soap/internal/normalize"
)

// Rule is one trigger/correction pair. Rules are evaluated in declaration
// order; the first rule matching a span wins and corrections never overlap.
type Rule struct {
	Trigger     string
	Replacement string
	PronounSwap bool // "me and <X>" clause reordering
}

// subjectCase maps object-case pronouns to their subject form for the
// pronoun-swap rule.
var subjectCase = map[string]string{
	"me":   "I",
	"him":  "he",
	"her":  "she",
	"them": "they",
	"us":   "we",
}

// rules is the fixed, ordered correction table.
var rules = []Rule{
	{Trigger: "me and", PronounSwap: true},

	{Trigger: "should of", Replacement: "should have"},
	{Trigger: "could of", Replacement: "could have"},
	{Trigger: "would of", Replacement: "would have"},
	{Trigger: "must of", Replacement: "must have"},
	{Trigger: "might of", Replacement: "might have"},

	{Trigger: "he don't", Replacement: "he doesn't"},
	{Trigger: "she don't", Replacement: "she doesn't"},
	{Trigger: "it don't", Replacement: "it doesn't"},
	{Trigger: "they was", Replacement: "they were"},
	{Trigger: "we was", Replacement: "we were"},
	{Trigger: "you was", Replacement: "you were"},
	{Trigger: "you is", Replacement: "you are"},

	{Trigger: "don't know nothing", Replacement: "don't know anything"},
	{Trigger: "don't have no", Replacement: "don't have any"},
	{Trigger: "can't get no", Replacement: "can't get any"},
	{Trigger: "ain't got no", Replacement: "haven't got any"},

	{Trigger: "could care less", Replacement: "couldn't care less"},
	{Trigger: "irregardless", Replacement: "regardless"},
	{Trigger: "alot", Replacement: "a lot"},
	{Trigger: "supposably", Replacement: "supposedly"},
	{Trigger: "for all intensive purposes", Replacement: "for all intents and purposes"},
}

// Check scans text for known-bad constructs and returns the number of
// triggers found. Zero means clean. Empty input is clean. Input is folded
// through normalize.Normalize first, so leetspeak disguises ("5hould of")
// still count even though Correct leaves them as written.
func Check(text string) int {
	text = normalize.Normalize(text)
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	count := 0
	for _, rule := range rules {
		for _, idx := range triggerSpans(lower, rule.Trigger) {
			if rule.PronounSwap {
				// Only counts when a capturable token follows.
				if _, _, ok := captureToken(lower, idx+len(rule.Trigger)); !ok {
					continue
				}
			}
			count++
		}
	}
	return count
}

// Correct applies every matching rule's correction template left to right.
// The first-letter casing of each matched span is preserved. Correct is
// idempotent: corrected text contains no remaining triggers.
//
// Unlike Check, Correct edits the buffer exactly as written and does not
// fold leetspeak first. Normalizing would also collapse the author's
// spacing, and a rewritten span like "5hould" would silently change
// characters the rules never matched. A disguised trigger therefore
// raises the fault count but survives correction untouched.
func Correct(text string) string {
	if text == "" {
		return ""
	}
	for _, rule := range rules {
		if rule.PronounSwap {
			text = applyPronounSwap(text, rule.Trigger)
			continue
		}
		text = applyRule(text, rule.Trigger, rule.Replacement)
	}
	return text
}

// applyRule replaces every boundary-delimited, case-insensitive occurrence
// of trigger with replacement, matching the first letter's case.
func applyRule(text, trigger, replacement string) string {
	lower := strings.ToLower(text)
	spans := triggerSpans(lower, trigger)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	prev := 0
	for _, idx := range spans {
		b.WriteString(text[prev:idx])
		b.WriteString(matchCase(rune(text[idx]), replacement))
		prev = idx + len(trigger)
	}
	b.WriteString(text[prev:])
	return b.String()
}

// applyPronounSwap rewrites "me and <X>" clauses as "<X'> and I", where X'
// is the subject-case form of the captured pronoun.
func applyPronounSwap(text, trigger string) string {
	lower := strings.ToLower(text)

	for {
		spans := triggerSpans(lower, trigger)
		swapped := false
		for _, idx := range spans {
			token, end, ok := captureToken(lower, idx+len(trigger))
			if !ok {
				continue
			}
			subject, known := subjectCase[token]
			if !known {
				subject = text[end-len(token) : end]
			}
			replacement := subject + " and I"
			text = text[:idx] + matchCase(rune(text[idx]), replacement) + text[end:]
			lower = strings.ToLower(text)
			swapped = true
			break
		}
		if !swapped {
			return text
		}
	}
}

// captureToken reads the next word after position start, skipping leading
// spaces. Returns the lowercase token and the end offset.
func captureToken(lower string, start int) (token string, end int, ok bool) {
	i := start
	for i < len(lower) && lower[i] == ' ' {
		i++
	}
	j := i
	for j < len(lower) && (isWordByte(lower[j]) || lower[j] == '\'') {
		j++
	}
	if j == i {
		return "", 0, false
	}
	return lower[i:j], j, true
}

// triggerSpans returns the start offsets of boundary-delimited occurrences
// of trigger within lower, in order.
func triggerSpans(lower, trigger string) []int {
	var spans []int
	for from := 0; ; {
		idx := strings.Index(lower[from:], trigger)
		if idx < 0 {
			return spans
		}
		idx += from
		if boundedAt(lower, idx, len(trigger)) {
			spans = append(spans, idx)
		}
		from = idx + len(trigger)
	}
}

func boundedAt(s string, idx, n int) bool {
	if idx > 0 && isWordByte(s[idx-1]) {
		return false
	}
	if idx+n < len(s) && isWordByte(s[idx+n]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	r := rune(b)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func matchCase(first rune, s string) string {
	if !unicode.IsUpper(first) || s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
