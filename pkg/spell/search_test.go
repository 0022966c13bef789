package spell

import (
	"fmt"
	"testing"
)

// levenshtein is a reference implementation (full Wagner-Fischer matrix) used
// to validate the distances the trie search reports.
func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minCost(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func TestSearchTrieDistances(t *testing.T) {
	words := []string{
		"hello", "help", "hell", "held", "helm",
		"cat", "car", "cart", "care", "core",
		"book", "back", "bank", "bake",
	}
	store := NewTrieStore()
	for _, w := range words {
		store.Insert(w)
	}

	targets := []string{"hallo", "helo", "cta", "bok", "caare", "zzz"}
	for _, target := range targets {
		for maxDist := 0; maxDist <= 3; maxDist++ {
			t.Run(fmt.Sprintf("%s/max=%d", target, maxDist), func(t *testing.T) {
				hits := SearchTrie(store, target, maxDist)

				got := make(map[string]int, len(hits))
				for _, h := range hits {
					if h.Distance != levenshtein(target, h.Word) {
						t.Errorf("Reported distance %d for %q, true distance is %d",
							h.Distance, h.Word, levenshtein(target, h.Word))
					}
					if h.Distance > maxDist {
						t.Errorf("%q at distance %d exceeds budget %d", h.Word, h.Distance, maxDist)
					}
					got[h.Word] = h.Distance
				}

				// Pruning must never cost us a qualifying word.
				for _, w := range words {
					if d := levenshtein(target, w); d <= maxDist {
						if _, ok := got[w]; !ok {
							t.Errorf("Missing %q (distance %d <= %d)", w, d, maxDist)
						}
					}
				}
			})
		}
	}
}

func TestSearchTrieEdgeCases(t *testing.T) {
	store := NewTrieStore()
	store.Insert("cat")

	if hits := SearchTrie(store, "", 2); hits != nil {
		t.Errorf("Empty target returned %v", hits)
	}
	if hits := SearchTrie(store, "cat", -1); hits != nil {
		t.Errorf("Negative budget returned %v", hits)
	}
	if hits := SearchTrie(nil, "cat", 2); hits != nil {
		t.Errorf("Nil store returned %v", hits)
	}

	// Distance zero only surfaces the exact word.
	hits := SearchTrie(store, "cat", 0)
	if len(hits) != 1 || hits[0].Word != "cat" || hits[0].Distance != 0 {
		t.Errorf("Expected exact hit for zero budget, got %v", hits)
	}

	empty := NewTrieStore()
	if hits := SearchTrie(empty, "cat", 3); len(hits) != 0 {
		t.Errorf("Empty store returned %v", hits)
	}
}

func TestSearchTriePrunes(t *testing.T) {
	// A long word sharing no letters with the target sits behind a prefix
	// whose row minimum exceeds the budget early; the search must not emit
	// anything from that branch.
	store := NewTrieStore()
	store.Insert("zzzzzzzzzz")
	store.Insert("cat")

	hits := SearchTrie(store, "cat", 1)
	if len(hits) != 1 || hits[0].Word != "cat" {
		t.Errorf("Expected only 'cat', got %v", hits)
	}
}

func BenchmarkSearchTrie(b *testing.B) {
	store := NewTrieStore()
	for i := 0; i < 5000; i++ {
		suffix := []byte{
			byte('a' + i%26),
			byte('a' + (i/26)%26),
			byte('a' + (i/676)%26),
		}
		store.Insert("word" + string(suffix))
	}

	inputs := []string{"wordabc", "wrdxy", "woordq", "wodrzz", "zebra"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SearchTrie(store, inputs[i%len(inputs)], 2)
	}
}
