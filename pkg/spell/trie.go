package spell

import "strings"

const alphabetSize = 26

// trieNode is a single node in the 26-ary prefix tree. Each child slot owns
// the subtree below it; terminal marks that the root-to-node path spells a
// stored word.
type trieNode struct {
	children [alphabetSize]*trieNode
	terminal bool
}

// hasChildren reports whether any child slot is occupied.
func (n *trieNode) hasChildren() bool {
	for _, c := range n.children {
		if c != nil {
			return true
		}
	}
	return false
}

// TrieStore is a prefix tree over lowercase ASCII letters. It owns its node
// graph for its whole lifetime; nodes that no longer contribute to a stored
// word are pruned on Remove.
//
// A TrieStore is not safe for concurrent use. Callers that share one across
// goroutines must serialize Insert/Remove against all other operations.
type TrieStore struct {
	root *trieNode
	size int
}

// NewTrieStore returns an empty store.
func NewTrieStore() *TrieStore {
	return &TrieStore{root: &trieNode{}}
}

// Normalize lower-cases a word. This is the only normalization the engine
// applies; everything downstream assumes its output.
func Normalize(word string) string {
	return strings.ToLower(word)
}

// Insert adds a word to the store. Characters outside a-z after lowercasing
// are skipped rather than aborting the insert, so the path is built from the
// valid letters only. Inserting an empty word or a duplicate is a no-op.
func (s *TrieStore) Insert(word string) {
	w := Normalize(word)
	if w == "" {
		return
	}
	curr := s.root
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' {
			continue
		}
		idx := c - 'a'
		if curr.children[idx] == nil {
			curr.children[idx] = &trieNode{}
		}
		curr = curr.children[idx]
	}
	// The empty string is not a storable word; if every character was
	// skipped we are still at the root.
	if curr == s.root {
		return
	}
	if !curr.terminal {
		curr.terminal = true
		s.size++
	}
}

// Contains reports whether the exact word is stored. A word that exists only
// as a prefix of another stored word is not contained, and neither is a word
// that still holds a non-letter after lowercasing.
func (s *TrieStore) Contains(word string) bool {
	w := Normalize(word)
	if w == "" {
		return false
	}
	curr := s.root
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' {
			return false
		}
		next := curr.children[c-'a']
		if next == nil {
			return false
		}
		curr = next
	}
	return curr.terminal
}

// Remove deletes a word from the store, then prunes the path bottom-up: a
// node is dropped by its parent exactly when it is no longer a terminal for
// some other word and owns no remaining children. Removing an absent word
// leaves the store unchanged.
func (s *TrieStore) Remove(word string) {
	w := Normalize(word)
	if w == "" || !s.Contains(w) {
		return
	}
	s.removeRec(s.root, w, 0)
	s.size--
}

// removeRec descends to the terminal node for word[depth:] and reports to the
// caller whether the visited node is now structurally empty and may be
// dropped. The decision is made on the way back up so shared-prefix ancestors
// survive exactly as long as another word needs them.
func (s *TrieStore) removeRec(node *trieNode, word string, depth int) bool {
	if depth == len(word) {
		node.terminal = false
		return !node.hasChildren()
	}

	idx := word[depth] - 'a'
	child := node.children[idx]
	if child == nil {
		return false
	}

	if s.removeRec(child, word, depth+1) {
		node.children[idx] = nil
		if !node.terminal && !node.hasChildren() {
			return true
		}
	}
	return false
}

// Len returns the number of stored words.
func (s *TrieStore) Len() int {
	return s.size
}

// Words returns every stored word in alphabetical order. The order falls out
// of the letter-indexed child slots, no sorting happens here.
func (s *TrieStore) Words() []string {
	words := make([]string, 0, s.size)
	var path []byte
	var walk func(n *trieNode)
	walk = func(n *trieNode) {
		if n.terminal {
			words = append(words, string(path))
		}
		for i, child := range n.children {
			if child == nil {
				continue
			}
			path = append(path, byte('a'+i))
			walk(child)
			path = path[:len(path)-1]
		}
	}
	walk(s.root)
	return words
}
