// Package spell is the core engine: the 26-ary trie stores, the bounded
// edit-distance search over them, and the two-store checker facade that the
// server and CLI consume.
package spell

// IChecker defines the interface for spell checking engines
type IChecker interface {
	// IsCorrect reports whether a word is in either store
	IsCorrect(word string) bool

	// Suggest returns ranked suggestions within an edit distance budget
	Suggest(word string, maxDistance int) []SuggestionResult

	// AddCustomWord adds a single word to the custom store
	AddCustomWord(word string)

	// RemoveCustomWord removes a single word from the custom store
	RemoveCustomWord(word string)

	// CustomWords returns the custom store contents in alphabetical order
	CustomWords() []string

	// Stats returns word counts for the loaded stores
	Stats() map[string]int
}
