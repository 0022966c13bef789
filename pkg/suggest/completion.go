// Package suggest provides prefix completion over the loaded word lists,
// used by the host editor next to spell checking.
package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Completion is one candidate word for a typed prefix.
type Completion struct {
	Word string
}

// Completer serves prefix completions from a patricia trie. It is populated
// from the same word lists that feed the spell checker and is read-only
// afterwards.
type Completer struct {
	trie       *patricia.Trie
	totalWords int
}

// NewCompleter returns an empty completer.
func NewCompleter() *Completer {
	return &Completer{
		trie: patricia.NewTrie(),
	}
}

// AddWord inserts a single word.
func (c *Completer) AddWord(word string) {
	if word == "" {
		return
	}
	if c.trie.Insert(patricia.Prefix(strings.ToLower(word)), true) {
		c.totalWords++
	}
}

// AddWords bulk inserts words, skipping empty entries.
func (c *Completer) AddWords(words []string) {
	for _, w := range words {
		c.AddWord(w)
	}
}

// Complete returns up to limit words starting with the given prefix, in
// alphabetical order, with the query's capitalization pattern re-applied.
// The prefix itself is excluded.
func (c *Completer) Complete(prefix string, limit int) []Completion {
	if prefix == "" || limit == 0 {
		return nil
	}

	lowerPrefix := strings.ToLower(prefix)

	// Remember which positions were capitalized so completions can mirror
	// the way the user typed the prefix.
	capitalPositions := make([]bool, len(prefix))
	for i, r := range prefix {
		if i < len(capitalPositions) {
			capitalPositions[i] = r >= 'A' && r <= 'Z'
		}
	}

	var completions []Completion
	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lowerPrefix {
			return nil
		}
		completions = append(completions, Completion{
			Word: applyCapitalization(word, capitalPositions),
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(completions, func(i, j int) bool {
		return completions[i].Word < completions[j].Word
	})

	if limit > 0 && len(completions) > limit {
		completions = completions[:limit]
	}
	return completions
}

// Stats returns the loaded word count.
func (c *Completer) Stats() map[string]int {
	return map[string]int{"completionWords": c.totalWords}
}

func applyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}
	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] && wordRunes[i] >= 'a' && wordRunes[i] <= 'z' {
			wordRunes[i] = wordRunes[i] - 'a' + 'A'
		}
	}
	return string(wordRunes)
}
