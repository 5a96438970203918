package style

import (
	"strings"
	"unicode"
)

// Sentence is one segment of the input buffer. Start and End are byte
// offsets into the original text; segmentation is stateless, so the same
// input always yields the same spans.
type Sentence struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// SplitSentences splits text after '.', '!' or '?' followed by whitespace or
// end of input. The splitter is deliberately naive: abbreviations like
// "Dr." split too.
func SplitSentences(text string) []Sentence {
	var sentences []Sentence
	start := -1
	for i, r := range text {
		if start < 0 {
			if unicode.IsSpace(r) {
				continue
			}
			start = i
		}
		if r == '.' || r == '!' || r == '?' {
			next := i + 1
			if next >= len(text) || text[next] == ' ' || text[next] == '\t' || text[next] == '\n' || text[next] == '\r' {
				sentences = append(sentences, Sentence{
					Text:  text[start:next],
					Start: start,
					End:   next,
				})
				start = -1
			}
		}
	}
	if start >= 0 {
		end := len(text)
		for end > start && unicode.IsSpace(rune(text[end-1])) {
			end--
		}
		if end > start {
			sentences = append(sentences, Sentence{Text: text[start:end], Start: start, End: end})
		}
	}
	return sentences
}

// Analyze labels the text "concise", "verbose" or "neutral" from the
// average words-per-sentence: under 6 concise, over 20 verbose.
func Analyze(text string) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return "neutral"
	}
	words := 0
	for _, s := range sentences {
		words += len(strings.Fields(s.Text))
	}
	avg := float64(words) / float64(len(sentences))
	switch {
	case avg < 6:
		return "concise"
	case avg > 20:
		return "verbose"
	default:
		return "neutral"
	}
}

// beVerbs and participles drive the passive-voice heuristic.
var beVerbs = map[string]bool{
	"is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "am": true,
}

var irregularParticiples = map[string]bool{
	"done": true, "made": true, "given": true, "taken": true, "seen": true,
	"known": true, "written": true, "built": true, "sent": true,
	"found": true, "held": true, "kept": true, "left": true, "lost": true,
	"paid": true, "sold": true, "told": true, "brought": true,
	"bought": true, "caught": true, "taught": true, "thought": true,
	"chosen": true, "broken": true, "spoken": true, "driven": true,
	"eaten": true, "hidden": true, "stolen": true, "thrown": true,
	"shown": true, "grown": true, "drawn": true, "worn": true, "torn": true,
}

// PassiveRatio returns the percentage (0-100) of sentences containing a
// to-be verb directly followed by a past participle, optionally trailed by
// "by".
func PassiveRatio(text string) int {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	passive := 0
	for _, s := range sentences {
		if isPassive(s.Text) {
			passive++
		}
	}
	return passive * 100 / len(sentences)
}

func isPassive(sentence string) bool {
	words := tokenize(sentence)
	for i := 0; i+1 < len(words); i++ {
		if !beVerbs[words[i]] {
			continue
		}
		next := words[i+1]
		if irregularParticiples[next] {
			return true
		}
		if strings.HasSuffix(next, "ed") && len(next) > 3 {
			return true
		}
	}
	return false
}

// Summarize returns a crude extractive summary: the first sentence plus the
// highest keyword-frequency sentence. When they coincide the first sentence
// stands alone.
func Summarize(text string) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) == 1 {
		return sentences[0].Text
	}
	key := keySentenceIndex(text, sentences)
	if key <= 0 {
		return sentences[0].Text
	}
	return sentences[0].Text + " " + sentences[key].Text
}

// ExtractKeySentence returns the single highest-scoring sentence by keyword
// frequency.
func ExtractKeySentence(text string) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}
	return sentences[keySentenceIndex(text, sentences)].Text
}

// keySentenceIndex scores each sentence by the summed corpus frequency of
// its non-stop-word tokens. Ties go to the earliest sentence.
func keySentenceIndex(text string, sentences []Sentence) int {
	freq := make(map[string]int)
	for _, w := range tokenize(text) {
		if !stopWords[w] {
			freq[w]++
		}
	}
	best, bestScore := 0, -1
	for i, s := range sentences {
		score := 0
		for _, w := range tokenize(s.Text) {
			score += freq[w]
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// Reflow wraps text at width columns with a greedy word fill. Words are
// never split, so a single word longer than width overflows its line.
// A non-positive width returns the text unchanged.
func Reflow(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		wlen := len([]rune(w))
		switch {
		case i == 0:
			b.WriteString(w)
			lineLen = wlen
		case lineLen+1+wlen > width:
			b.WriteByte('\n')
			b.WriteString(w)
			lineLen = wlen
		default:
			b.WriteByte(' ')
			b.WriteString(w)
			lineLen += 1 + wlen
		}
	}
	return b.String()
}

// CapMode selects a Capitalize transform.
type CapMode int

const (
	CapSentence CapMode = iota // first letter after each sentence boundary
	CapTitle                   // first letter of every word
	CapUpper                   // every letter uppercased
	CapLower                   // every letter lowercased
)

// Capitalize transforms the casing of text according to mode. Unknown modes
// return the text unchanged.
func Capitalize(text string, mode CapMode) string {
	switch mode {
	case CapUpper:
		return strings.ToUpper(text)
	case CapLower:
		return strings.ToLower(text)
	case CapTitle:
		return capitalizeTitle(text)
	case CapSentence:
		return capitalizeSentences(text)
	default:
		return text
	}
}

func capitalizeTitle(text string) string {
	runes := []rune(text)
	atWordStart := true
	for i, r := range runes {
		if unicode.IsSpace(r) {
			atWordStart = true
			continue
		}
		if atWordStart && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
		}
		atWordStart = false
	}
	return string(runes)
}

func capitalizeSentences(text string) string {
	runes := []rune(text)
	atStart := true
	for i, r := range runes {
		switch {
		case r == '.' || r == '!' || r == '?':
			atStart = true
		case unicode.IsSpace(r):
			// boundary state carries across whitespace
		case atStart && unicode.IsLetter(r):
			runes[i] = unicode.ToUpper(r)
			atStart = false
		default:
			atStart = false
		}
	}
	return string(runes)
}

// tokenize lowercases and splits on non-word runes.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// stopWords are excluded from keyword-frequency scoring.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "of": true, "to": true, "in": true, "on": true,
	"at": true, "is": true, "are": true, "was": true, "were": true,
	"it": true, "this": true, "that": true, "with": true, "for": true,
	"as": true, "by": true, "be": true, "has": true, "have": true,
	"had": true, "not": true, "from": true, "its": true, "their": true,
}
