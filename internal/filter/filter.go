package filter

import (
	"sort"
	"strings"
	"unicode"

	"github.com/textsoap/soap/internal/patterns"
)

// maskRune fills every matched span.
const maskRune = '*'

// Filter masks tokens of text matching any of the comma-separated glob
// patterns. Matching is case-insensitive against the punctuation-trimmed
// core of each token; '*' matches any run of characters. The matched core is
// replaced by an equal-length run of asterisks and everything else is
// preserved verbatim. Empty input yields an empty result.
func Filter(patternsCSV, text string) string {
	if text == "" {
		return ""
	}

	var globs []string
	for _, p := range strings.Split(patternsCSV, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			globs = append(globs, strings.ToLower(p))
		}
	}
	if len(globs) == 0 {
		return text
	}

	// Longest pattern first so the most specific literal wins a tie.
	sort.Slice(globs, func(i, j int) bool { return len(globs[i]) > len(globs[j]) })

	var b strings.Builder
	b.Grow(len(text))
	for _, seg := range segments(text) {
		if seg.space {
			b.WriteString(seg.text)
			continue
		}
		core, prefix, suffix := trimToken(seg.text)
		matched := false
		for _, g := range globs {
			if matchGlob(g, strings.ToLower(core)) {
				matched = true
				break
			}
		}
		if matched && core != "" {
			b.WriteString(prefix)
			b.WriteString(strings.Repeat(string(maskRune), len([]rune(core))))
			b.WriteString(suffix)
		} else {
			b.WriteString(seg.text)
		}
	}
	return b.String()
}

// Sanitize masks every registered offensive, slang, meme, and custom term in
// text with an asterisk run equal to the term's own length. Matching is
// case-insensitive and boundary-aware, so terms inside larger words are left
// alone. Token count and all non-matched characters are preserved.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	lower := []rune(strings.ToLower(text))

	for _, term := range sanitizeTerms() {
		target := []rune(strings.ToLower(term))
		if len(target) == 0 {
			continue
		}
		for i := 0; i+len(target) <= len(lower); i++ {
			if !runesEqual(lower[i:i+len(target)], target) {
				continue
			}
			if !boundaryAt(lower, i, len(target)) {
				continue
			}
			for j := i; j < i+len(target); j++ {
				// Interior whitespace survives so multi-word phrases keep
				// their token count.
				if unicode.IsSpace(runes[j]) {
					continue
				}
				runes[j] = maskRune
				lower[j] = maskRune
			}
			i += len(target) - 1
		}
	}
	return string(runes)
}

// Suggest replaces every registered term that carries a canonical
// replacement with that replacement, preserving the casing of the first
// letter of the matched span.
func Suggest(text string) string {
	if text == "" {
		return ""
	}

	type candidate struct {
		term       []rune
		suggestion string
	}
	var cands []candidate
	for _, e := range patterns.EntriesFor(
		patterns.CategoryOffensive,
		patterns.CategorySlang,
		patterns.CategoryMeme,
		patterns.CategoryCustom,
	) {
		if e.Suggestion == "" {
			continue
		}
		for _, t := range e.Terms {
			cands = append(cands, candidate{[]rune(strings.ToLower(t)), e.Suggestion})
		}
	}
	// Longest term first so "rotbrain" wins over any shorter alias.
	sort.Slice(cands, func(i, j int) bool { return len(cands[i].term) > len(cands[j].term) })

	runes := []rune(text)
	lower := []rune(strings.ToLower(text))

	var b strings.Builder
	for i := 0; i < len(runes); {
		replaced := false
		for _, c := range cands {
			if i+len(c.term) > len(lower) {
				continue
			}
			if !runesEqual(lower[i:i+len(c.term)], c.term) {
				continue
			}
			if !boundaryAt(lower, i, len(c.term)) {
				continue
			}
			b.WriteString(matchCase(runes[i], c.suggestion))
			i += len(c.term)
			replaced = true
			break
		}
		if !replaced {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}

// AddCustomFilter registers term as a custom sanitization target.
// It fails only on an empty or blank term.
func AddCustomFilter(term string) error {
	return patterns.Add(patterns.Entry{
		Category: patterns.CategoryCustom,
		Terms:    []string{strings.TrimSpace(term)},
		Severity: 1,
	})
}

// sanitizeTerms returns the mask targets ordered longest first so longer
// phrases win over shorter substrings.
func sanitizeTerms() []string {
	terms := patterns.TermsFor(
		patterns.CategoryOffensive,
		patterns.CategorySlang,
		patterns.CategoryMeme,
		patterns.CategoryCustom,
	)
	sort.Slice(terms, func(i, j int) bool { return len(terms[i]) > len(terms[j]) })
	return terms
}

// boundaryAt reports whether the span [i, i+n) sits on word boundaries:
// the runes immediately before and after must not be letters or digits.
func boundaryAt(runes []rune, i, n int) bool {
	if i > 0 {
		if r := runes[i-1]; unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if i+n < len(runes) {
		if r := runes[i+n]; unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// matchCase uppercases the first letter of s when the matched span began
// with an uppercase letter.
func matchCase(first rune, s string) string {
	if !unicode.IsUpper(first) || s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// matchGlob reports whether s matches the glob pattern, where '*' matches
// any run of characters. Both inputs are expected in lowercase.
func matchGlob(pattern, s string) bool {
	p := []rune(pattern)
	t := []rune(s)

	var match func(pi, ti int) bool
	match = func(pi, ti int) bool {
		for pi < len(p) {
			if p[pi] == '*' {
				for skip := ti; skip <= len(t); skip++ {
					if match(pi+1, skip) {
						return true
					}
				}
				return false
			}
			if ti >= len(t) || p[pi] != t[ti] {
				return false
			}
			pi++
			ti++
		}
		return ti == len(t)
	}
	return match(0, 0)
}

// segment is a run of either whitespace or non-whitespace characters.
type segment struct {
	text  string
	space bool
}

// segments splits text into alternating whitespace and word runs so the
// original spacing can be reproduced exactly.
func segments(text string) []segment {
	var segs []segment
	var b strings.Builder
	var inSpace bool
	for i, r := range text {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
		}
		if isSpace != inSpace {
			segs = append(segs, segment{b.String(), inSpace})
			b.Reset()
			inSpace = isSpace
		}
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		segs = append(segs, segment{b.String(), inSpace})
	}
	return segs
}

// trimToken strips leading and trailing punctuation from a token, returning
// the core and the stripped affixes.
func trimToken(token string) (core, prefix, suffix string) {
	runes := []rune(token)
	start := 0
	for start < len(runes) && !isWordRune(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && !isWordRune(runes[end-1]) {
		end--
	}
	return string(runes[start:end]), string(runes[:start]), string(runes[end:])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
