package spell

import (
	"sort"

	"github.com/charmbracelet/log"
)

// Checker is the spell checking facade. It owns two independent stores for
// its entire lifetime: the canonical dictionary, loaded once at startup, and
// the user-editable custom list (character names, lore terms and the like).
// Custom words take priority over the dictionary everywhere.
//
// A Checker holds no state beyond its stores and never caches query results.
// Like TrieStore it is unsynchronized; callers that mutate and query from
// different goroutines must serialize access themselves.
type Checker struct {
	dictionary *TrieStore
	custom     *TrieStore
}

// NewChecker returns a checker with two empty stores.
func NewChecker() *Checker {
	return &Checker{
		dictionary: NewTrieStore(),
		custom:     NewTrieStore(),
	}
}

// LoadDictionary bulk inserts words into the dictionary store, skipping
// empty entries. The dictionary is read-only after load; there is no
// facade-level removal for it.
func (c *Checker) LoadDictionary(words []string) {
	loadWords(c.dictionary, words)
	log.Debugf("Dictionary store loaded: %d words", c.dictionary.Len())
}

// LoadCustomWords bulk inserts words into the custom store, skipping empty
// entries.
func (c *Checker) LoadCustomWords(words []string) {
	loadWords(c.custom, words)
	log.Debugf("Custom store loaded: %d words", c.custom.Len())
}

func loadWords(store *TrieStore, words []string) {
	for _, w := range words {
		if w == "" {
			continue
		}
		store.Insert(w)
	}
}

// AddCustomWord inserts a single word into the custom store. Empty input is
// a no-op.
func (c *Checker) AddCustomWord(word string) {
	c.custom.Insert(word)
}

// RemoveCustomWord removes a word from the custom store, pruning nodes no
// other word needs. Absent or empty words are a no-op.
func (c *Checker) RemoveCustomWord(word string) {
	c.custom.Remove(word)
}

// IsCorrect reports whether the word is known. The custom store is consulted
// first and short-circuits the dictionary check. Empty input is never
// correct.
func (c *Checker) IsCorrect(word string) bool {
	if word == "" {
		return false
	}
	w := Normalize(word)
	if c.custom.Contains(w) {
		return true
	}
	return c.dictionary.Contains(w)
}

// ExistsInDictionary reports whether the word is in the dictionary store
// specifically, ignoring the custom list.
func (c *Checker) ExistsInDictionary(word string) bool {
	return c.dictionary.Contains(word)
}

// ExistsInCustom reports whether the word is in the custom store
// specifically.
func (c *Checker) ExistsInCustom(word string) bool {
	return c.custom.Contains(word)
}

// Suggest returns every known word within maxDistance edits of the query,
// sorted by ascending distance with ties broken alphabetically, one entry
// per word. The custom store is searched first, so when a word somehow lives
// in both stores the dedup keeps a single deterministic entry. No cap is
// applied here; truncating to a bounded count is the boundary layer's job.
func (c *Checker) Suggest(word string, maxDistance int) []SuggestionResult {
	if word == "" || maxDistance < 0 {
		return nil
	}
	target := Normalize(word)

	results := SearchTrie(c.custom, target, maxDistance)
	results = append(results, SearchTrie(c.dictionary, target, maxDistance)...)

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Word < results[j].Word
	})

	// Same word from both stores carries the same distance, so after the
	// sort duplicates are adjacent in every field that matters.
	seen := make(map[string]bool, len(results))
	unique := results[:0]
	for _, r := range results {
		if seen[r.Word] {
			continue
		}
		seen[r.Word] = true
		unique = append(unique, r)
	}
	return unique
}

// CustomWords returns the custom store's words in alphabetical order, for
// persisting the personal word list back to disk.
func (c *Checker) CustomWords() []string {
	return c.custom.Words()
}

// Stats returns word counts for both stores.
func (c *Checker) Stats() map[string]int {
	return map[string]int{
		"dictionaryWords": c.dictionary.Len(),
		"customWords":     c.custom.Len(),
	}
}
