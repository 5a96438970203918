package patterns

import (
	"fmt"
	"strings"
	"sync"
)

// Category classifies a pattern entry
type Category string

const (
	CategoryOffensive    Category = "offensive"
	CategorySlang        Category = "slang"
	CategoryMeme         Category = "meme"
	CategoryTechnobabble Category = "technobabble"
	CategoryPolitical    Category = "political"
	CategoryConspiracy   Category = "conspiracy"
	CategoryMarketing    Category = "marketing"
	CategorySpamTrigger  Category = "spam_trigger"
	CategoryFormalMarker Category = "formal_marker"
	CategoryCasualMarker Category = "casual_marker"
	CategoryRagebait     Category = "ragebait"
	CategoryClickbait    Category = "clickbait"
	CategoryHype         Category = "hype"
	CategorySarcasm      Category = "sarcasm"
	CategorySnowflake    Category = "snowflake"
	CategoryBot          Category = "bot"
	CategoryWoke         Category = "woke"
	CategoryQuality      Category = "quality"
	CategoryExaggeration Category = "exaggeration"
	CategoryCustom       Category = "custom"
)

// Entry is a single categorized pattern with an optional canonical suggestion
type Entry struct {
	Category   Category `json:"category"`
	Terms      []string `json:"terms"`                // literal terms or aliases, matched case-insensitively
	Suggestion string   `json:"suggestion,omitempty"` // canonical replacement ("" for marker-only entries)
	Severity   int      `json:"severity"`             // 1 (mild) to 3 (severe)
}

// registry is the process-wide pattern database. Entries are append-only:
// custom additions go through Add, nothing is ever removed or mutated.
type registry struct {
	mu      sync.RWMutex
	entries []Entry
}

var db = &registry{entries: builtinEntries()}

// Add appends a custom entry to the process-wide database.
// Concurrent readers always see a consistent prefix of the entry list.
func Add(entry Entry) error {
	if len(entry.Terms) == 0 {
		return fmt.Errorf("pattern entry requires at least one term")
	}
	for _, term := range entry.Terms {
		if strings.TrimSpace(term) == "" {
			return fmt.Errorf("pattern term must not be blank")
		}
	}
	if entry.Category == "" {
		entry.Category = CategoryCustom
	}
	if entry.Severity == 0 {
		entry.Severity = 1
	}
	db.mu.Lock()
	db.entries = append(db.entries, entry)
	db.mu.Unlock()
	return nil
}

// Entries returns a snapshot of all entries in declaration order.
func Entries() []Entry {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]Entry, len(db.entries))
	copy(out, db.entries)
	return out
}

// EntriesFor returns a snapshot of the entries in the given categories,
// preserving declaration order.
func EntriesFor(categories ...Category) []Entry {
	want := make(map[Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	var out []Entry
	for _, e := range db.entries {
		if want[e.Category] {
			out = append(out, e)
		}
	}
	return out
}

// TermsFor returns every term registered under the given categories.
func TermsFor(categories ...Category) []string {
	var out []string
	for _, e := range EntriesFor(categories...) {
		out = append(out, e.Terms...)
	}
	return out
}

// Contains reports whether word is registered under any of the given
// categories. The comparison is case-insensitive.
func Contains(word string, categories ...Category) bool {
	lower := strings.ToLower(strings.TrimSpace(word))
	if lower == "" {
		return false
	}
	for _, term := range TermsFor(categories...) {
		if strings.ToLower(term) == lower {
			return true
		}
	}
	return false
}
