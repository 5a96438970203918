package readability

import (
	"strings"
	"unicode"
)

// Result pairs the numeric readability score with its bucket label.
type Result struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Score computes a Flesch-style reading-ease score clamped to [0,100]:
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// Empty text scores 100: nothing written cannot be hard to read.
func Score(text string) int {
	words := wordList(text)
	if len(words) == 0 {
		return 100
	}
	sentences := sentenceCount(text)
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += Syllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))

	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score)
	}
}

// Label buckets the score: >=70 easy, 40-69 moderate, below 40 complex.
func Label(text string) string {
	switch score := Score(text); {
	case score >= 70:
		return "easy"
	case score >= 40:
		return "moderate"
	default:
		return "complex"
	}
}

// Analyze returns the score and label together.
func Analyze(text string) Result {
	return Result{Value: Score(text), Label: Label(text)}
}

// Syllables estimates the syllable count of a word by counting vowel
// groups, dropping a silent trailing 'e', with a floor of one.
func Syllables(word string) int {
	word = strings.ToLower(word)
	const vowels = "aeiouy"

	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// wordList extracts alphabetic word tokens.
func wordList(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// sentenceCount counts terminator runs, so "Wait...!" is one sentence.
func sentenceCount(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if !inRun {
				count++
			}
			inRun = true
			continue
		}
		inRun = false
	}
	if count == 0 && strings.TrimSpace(text) != "" {
		return 1
	}
	return count
}
