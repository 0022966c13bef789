package spell

// SuggestionResult pairs a candidate word with its Levenshtein distance from
// the query it was produced for.
type SuggestionResult struct {
	Word     string
	Distance int
}

// suggestionSearch carries the state of one bounded edit-distance traversal:
// the normalized target, the distance budget, the path accumulator for the
// word spelled so far, and the hits collected at terminal nodes.
type suggestionSearch struct {
	target  string
	maxDist int
	path    []byte
	results []SuggestionResult
}

// SearchTrie walks the store depth-first and returns every stored word whose
// Levenshtein distance from target is at most maxDistance, each paired with
// its exact distance. The target must already be normalized; results are in
// trie (letter) order, not ranked.
func SearchTrie(store *TrieStore, target string, maxDistance int) []SuggestionResult {
	if store == nil || target == "" || maxDistance < 0 {
		return nil
	}

	// Row i of the DP seed is the cost of deleting the first i target
	// characters against the empty path.
	firstRow := make([]int, len(target)+1)
	for i := range firstRow {
		firstRow[i] = i
	}

	search := &suggestionSearch{
		target:  target,
		maxDist: maxDistance,
		path:    make([]byte, 0, len(target)+maxDistance+1),
	}
	for i, child := range store.root.children {
		if child != nil {
			search.walk(child, byte('a'+i), firstRow)
		}
	}
	return search.results
}

// walk computes the Levenshtein row for the edge leading into node, records a
// hit when the node terminates a word within budget, and descends only while
// the row minimum still fits the budget. Every entry of any descendant row is
// bounded below by that minimum, so once it exceeds maxDist no word in the
// subtree can qualify.
func (ss *suggestionSearch) walk(node *trieNode, letter byte, prevRow []int) {
	n := len(ss.target)
	row := make([]int, n+1)
	row[0] = prevRow[0] + 1

	rowMin := row[0]
	for i := 1; i <= n; i++ {
		insertCost := row[i-1] + 1
		deleteCost := prevRow[i] + 1
		replaceCost := prevRow[i-1]
		if ss.target[i-1] != letter {
			replaceCost++
		}
		row[i] = minCost(insertCost, deleteCost, replaceCost)
		if row[i] < rowMin {
			rowMin = row[i]
		}
	}

	ss.path = append(ss.path, letter)
	if node.terminal && row[n] <= ss.maxDist {
		ss.results = append(ss.results, SuggestionResult{
			Word:     string(ss.path),
			Distance: row[n],
		})
	}

	if rowMin <= ss.maxDist {
		for i, child := range node.children {
			if child != nil {
				ss.walk(child, byte('a'+i), row)
			}
		}
	}
	ss.path = ss.path[:len(ss.path)-1]
}

func minCost(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
