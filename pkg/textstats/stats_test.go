package textstats

import "testing"

func TestWordCount(t *testing.T) {
	testCases := []struct {
		text        string
		expected    int
		description string
	}{
		{"", 0, "Empty text"},
		{"   \n\t  ", 0, "Whitespace only"},
		{"hello", 1, "Single word"},
		{"hello world", 2, "Two words"},
		{"  hello   world  ", 2, "Extra whitespace"},
		{"one\ntwo\tthree four", 4, "Mixed separators"},
		{"it's a hyphen-ated word", 4, "Punctuation stays inside words"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := WordCount(tc.text); got != tc.expected {
				t.Errorf("WordCount(%q) = %d, want %d", tc.text, got, tc.expected)
			}
		})
	}
}

func TestCharacterCount(t *testing.T) {
	testCases := []struct {
		text          string
		includeSpaces bool
		expected      int
		description   string
	}{
		{"", true, 0, "Empty with spaces"},
		{"", false, 0, "Empty without spaces"},
		{"abc", true, 3, "No whitespace"},
		{"a b c", true, 5, "Spaces counted"},
		{"a b c", false, 3, "Spaces skipped"},
		{"a\n\tb", false, 2, "Tabs and newlines skipped"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := CharacterCount(tc.text, tc.includeSpaces)
			if got != tc.expected {
				t.Errorf("CharacterCount(%q, %v) = %d, want %d",
					tc.text, tc.includeSpaces, got, tc.expected)
			}
		})
	}
}

func TestReadTime(t *testing.T) {
	testCases := []struct {
		words       int
		wpm         int
		expected    string
		description string
	}{
		{0, 200, "0 min", "No words"},
		{100, 0, "0 min", "Zero rate"},
		{100, -5, "0 min", "Negative rate"},
		{1, 200, "1 min", "Rounds up to a minute"},
		{200, 200, "1 min", "Exact minute"},
		{201, 200, "2 min", "Just over a minute"},
		{1000, 200, "5 min", "Several minutes"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := ReadTime(tc.words, tc.wpm); got != tc.expected {
				t.Errorf("ReadTime(%d, %d) = %q, want %q", tc.words, tc.wpm, got, tc.expected)
			}
		})
	}
}
