package classify

import (
	"strings"

	"github.com/textsoap/soap/internal/normalize"
	"github.com/textsoap/soap/internal/patterns"
)

// ToneProfile describes one detector: a label, the keyword set that votes
// for it, and the number of distinct keyword hits required.
type ToneProfile struct {
	Label        string
	Categories   []patterns.Category
	RequiredHits int
}

// Hits counts how many distinct keywords from the profile's categories
// occur in the folded text. Multi-word keywords match as phrases; single
// words only match whole tokens.
func (p ToneProfile) Hits(folded string) int {
	if folded == "" {
		return 0
	}
	padded := " " + folded + " "
	hits := 0
	for _, kw := range patterns.TermsFor(p.Categories...) {
		if strings.Contains(padded, " "+strings.ToLower(kw)+" ") {
			hits++
		}
	}
	return hits
}

// Matches reports whether the profile clears its hit threshold on the text.
func (p ToneProfile) Matches(text string) bool {
	return p.Hits(normalize.Fold(text)) >= p.RequiredHits
}

// detector builds a single-category boolean profile.
func detector(label string, required int, cats ...patterns.Category) ToneProfile {
	return ToneProfile{Label: label, Categories: cats, RequiredHits: required}
}

// Boolean detectors. Sharp short-form signals fire on one or two hits;
// diffuse signals (quality, technobabble) need several independent markers.

// DetectRagebait reports engineered-outrage language.
func DetectRagebait(text string) bool {
	return detector("ragebait", 1, patterns.CategoryRagebait).Matches(text)
}

// DetectClickbait reports curiosity-gap headline bait.
func DetectClickbait(text string) bool {
	return detector("clickbait", 2, patterns.CategoryClickbait).Matches(text)
}

// DetectSpam reports unsolicited-promotion trigger phrases.
func DetectSpam(text string) bool {
	return detector("spam", 1, patterns.CategorySpamTrigger).Matches(text)
}

// DetectWoke reports social-issue signalling vocabulary.
func DetectWoke(text string) bool {
	return detector("woke", 1, patterns.CategoryWoke).Matches(text)
}

// DetectBot reports machine-authored phrasing.
func DetectBot(text string) bool {
	return detector("bot", 1, patterns.CategoryBot).Matches(text)
}

// DetectSarcasm reports stock sarcastic constructions.
func DetectSarcasm(text string) bool {
	return detector("sarcasm", 1, patterns.CategorySarcasm).Matches(text)
}

// DetectFormal reports formal-register markers.
func DetectFormal(text string) bool {
	return detector("formal", 1, patterns.CategoryFormalMarker).Matches(text)
}

// DetectCasual reports informal-register markers.
func DetectCasual(text string) bool {
	return detector("casual", 1, patterns.CategoryCasualMarker).Matches(text)
}

// DetectSnowflake reports easily-offended framing.
func DetectSnowflake(text string) bool {
	return detector("snowflake", 1, patterns.CategorySnowflake).Matches(text)
}

// DetectOffensive reports registered insults anywhere in the text.
func DetectOffensive(text string) bool {
	return CountOffensive(text) > 0
}

// DetectHype reports superlative-promotion language.
func DetectHype(text string) bool {
	return detector("hype", 2, patterns.CategoryHype).Matches(text)
}

// DetectQuality reports methodical, evidence-oriented writing. The signal is
// diffuse, so several independent markers are required.
func DetectQuality(text string) bool {
	return detector("quality", 3, patterns.CategoryQuality).Matches(text)
}

// DetectPolitical reports policy and government vocabulary.
func DetectPolitical(text string) bool {
	return detector("political", 2, patterns.CategoryPolitical).Matches(text)
}

// DetectConspiracy reports conspiratorial framing.
func DetectConspiracy(text string) bool {
	return detector("conspiracy", 2, patterns.CategoryConspiracy).Matches(text)
}

// DetectMarketing reports sales copy.
func DetectMarketing(text string) bool {
	return detector("marketing", 2, patterns.CategoryMarketing).Matches(text)
}

// DetectTechnobabble reports buzzword-dense tech copy.
func DetectTechnobabble(text string) bool {
	return detector("technobabble", 3, patterns.CategoryTechnobabble).Matches(text)
}

// DetectExaggeration reports absolutist overstatement.
func DetectExaggeration(text string) bool {
	return detector("exaggeration", 2, patterns.CategoryExaggeration).Matches(text)
}

// toneProfiles is the fixed evaluation order for DetectTone. The formal and
// sarcastic profiles deliberately require more hits here than their boolean
// detectors do: weak formal or sarcastic cues degrade to "casual", which is
// the documented contract.
var toneProfiles = []ToneProfile{
	{Label: "ragebait", Categories: []patterns.Category{patterns.CategoryRagebait}, RequiredHits: 1},
	{Label: "formal", Categories: []patterns.Category{patterns.CategoryFormalMarker}, RequiredHits: 3},
	{Label: "sarcastic", Categories: []patterns.Category{patterns.CategorySarcasm}, RequiredHits: 3},
}

// DetectTone returns the strongest matching tone label in fixed priority
// order (ragebait, formal, sarcastic) and falls back to "casual". Results
// are deterministic for a given input.
func DetectTone(text string) string {
	folded := normalize.Fold(text)
	for _, p := range toneProfiles {
		if p.Hits(folded) >= p.RequiredHits {
			return p.Label
		}
	}
	return "casual"
}

// CountOffensive counts tokens of text registered as offensive.
func CountOffensive(text string) int {
	return countTokens(text, patterns.CategoryOffensive)
}

// CountSlang counts tokens registered as slang or meme vocabulary.
func CountSlang(text string) int {
	return countTokens(text, patterns.CategorySlang, patterns.CategoryMeme)
}

// IsOffensive reports whether a single word is a registered insult.
func IsOffensive(word string) bool {
	return patterns.Contains(word, patterns.CategoryOffensive)
}

// IsSlang reports whether a single word is registered slang or meme
// vocabulary.
func IsSlang(word string) bool {
	return patterns.Contains(word, patterns.CategorySlang, patterns.CategoryMeme)
}

// ContextualTone summarizes the vocabulary mix of the text: "neutral",
// "slang", "offensive", or "mixed".
func ContextualTone(text string) string {
	offensive := CountOffensive(text) > 0
	slang := CountSlang(text) > 0
	switch {
	case offensive && slang:
		return "mixed"
	case offensive:
		return "offensive"
	case slang:
		return "slang"
	default:
		return "neutral"
	}
}

func countTokens(text string, cats ...patterns.Category) int {
	folded := normalize.Fold(text)
	if folded == "" {
		return 0
	}
	terms := make(map[string]bool)
	for _, t := range patterns.TermsFor(cats...) {
		terms[normalize.Fold(t)] = true
	}
	count := 0
	for _, token := range strings.Fields(folded) {
		if terms[token] {
			count++
		}
	}
	// Multi-word phrases are not visible token-by-token; count them as
	// whole-phrase occurrences.
	padded := " " + folded + " "
	for term := range terms {
		if strings.Contains(term, " ") && strings.Contains(padded, " "+term+" ") {
			count++
		}
	}
	return count
}
