package spell

import (
	"reflect"
	"testing"
)

func TestInsertContains(t *testing.T) {
	testCases := []struct {
		insert      []string
		query       string
		expected    bool
		description string
	}{
		{[]string{"hello"}, "hello", true, "Exact match"},
		{[]string{"hello"}, "HELLO", true, "Case folded query"},
		{[]string{"Hello"}, "hello", true, "Case folded insert"},
		{[]string{"hello"}, "helo", false, "Missing letter"},
		{[]string{"cats"}, "cat", false, "Prefix of stored word is not contained"},
		{[]string{"cat"}, "cats", false, "Extension of stored word is not contained"},
		{[]string{"a"}, "a", true, "Single letter word"},
		{[]string{"hello"}, "", false, "Empty query"},
		{[]string{""}, "", false, "Empty insert stores nothing"},
		{[]string{"don't"}, "dont", true, "Apostrophe skipped on insert"},
		{[]string{"dont"}, "don't", false, "Non-letter in query never matches"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			store := NewTrieStore()
			for _, w := range tc.insert {
				store.Insert(w)
			}
			if got := store.Contains(tc.query); got != tc.expected {
				t.Errorf("Contains(%q) = %v, want %v", tc.query, got, tc.expected)
			}
		})
	}
}

func TestInsertIdempotent(t *testing.T) {
	store := NewTrieStore()
	store.Insert("echo")
	store.Insert("echo")
	store.Insert("ECHO")

	if store.Len() != 1 {
		t.Errorf("Expected 1 stored word after duplicate inserts, got %d", store.Len())
	}
	store.Remove("echo")
	if store.Contains("echo") {
		t.Error("'echo' still contained after single remove")
	}
}

func TestRemove(t *testing.T) {
	store := NewTrieStore()
	for _, w := range []string{"cat", "car", "cart", "dog"} {
		store.Insert(w)
	}

	store.Remove("cat")
	if store.Contains("cat") {
		t.Error("'cat' still contained after removal")
	}
	for _, w := range []string{"car", "cart", "dog"} {
		if !store.Contains(w) {
			t.Errorf("'%s' lost by removing 'cat'", w)
		}
	}

	// 'car' is a prefix of 'cart'; removing it must only clear the flag.
	store.Remove("car")
	if store.Contains("car") {
		t.Error("'car' still contained after removal")
	}
	if !store.Contains("cart") {
		t.Error("'cart' lost by removing its prefix 'car'")
	}

	store.Remove("cart")
	store.Remove("dog")
	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d words", store.Len())
	}
	if store.root.hasChildren() {
		t.Error("Nodes left under the root after removing every word")
	}
}

func TestRemoveAbsent(t *testing.T) {
	testCases := []struct {
		remove      string
		description string
	}{
		{"car", "Shared prefix path exists but word was never stored"},
		{"catalog", "Path runs past a stored word"},
		{"dog", "No path at all"},
		{"", "Empty word"},
		{"cat!", "Non-letter makes the word unfindable"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			store := NewTrieStore()
			store.Insert("cat")
			store.Insert("cats")

			store.Remove(tc.remove)

			if !store.Contains("cat") || !store.Contains("cats") {
				t.Errorf("Remove(%q) disturbed unrelated words", tc.remove)
			}
			if store.Len() != 2 {
				t.Errorf("Remove(%q) changed word count to %d", tc.remove, store.Len())
			}
		})
	}
}

func TestWords(t *testing.T) {
	store := NewTrieStore()
	for _, w := range []string{"zebra", "Cat", "cart", "don't", "car"} {
		store.Insert(w)
	}

	got := store.Words()
	expected := []string{"car", "cart", "cat", "dont", "zebra"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Words() = %v, want %v", got, expected)
	}

	store.Remove("cart")
	got = store.Words()
	expected = []string{"car", "cat", "dont", "zebra"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Words() after remove = %v, want %v", got, expected)
	}

	if words := NewTrieStore().Words(); len(words) != 0 {
		t.Errorf("Empty store returned words: %v", words)
	}
}

func TestRemovePrunesMinimally(t *testing.T) {
	store := NewTrieStore()
	store.Insert("cat")
	store.Insert("car")

	store.Remove("cat")

	if !store.Contains("car") {
		t.Fatal("'car' lost after removing 'cat'")
	}
	// The shared 'ca' prefix must survive: c -> a -> r intact, t gone.
	ca := store.root.children['c'-'a'].children[0]
	if ca == nil {
		t.Fatal("Shared 'ca' node pruned while 'car' still needs it")
	}
	if ca.children['t'-'a'] != nil {
		t.Error("'t' branch not pruned after removing 'cat'")
	}
	if ca.children['r'-'a'] == nil {
		t.Error("'r' branch pruned while 'car' is stored")
	}
}
