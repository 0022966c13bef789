// Package textstats provides plain text statistics for the host editor:
// word and character counts plus an estimated reading time. All functions
// are pure and total over any input text.
package textstats

import (
	"fmt"
	"unicode"
)

// DefaultWPM is the reading speed assumed when the caller has no preference.
const DefaultWPM = 200

// WordCount counts whitespace-separated words. A word is any maximal run of
// non-whitespace characters.
func WordCount(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			count++
			inWord = true
		}
	}
	return count
}

// CharacterCount counts characters, optionally including whitespace.
func CharacterCount(text string, includeSpaces bool) int {
	if includeSpaces {
		return len([]rune(text))
	}
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

// ReadTime estimates reading time for wordCount words at wpm words per
// minute, rounded up to whole minutes. Zero words or a non-positive rate
// yields "0 min".
func ReadTime(wordCount, wpm int) string {
	if wpm <= 0 || wordCount <= 0 {
		return "0 min"
	}
	minutes := (wordCount + wpm - 1) / wpm
	return fmt.Sprintf("%d min", minutes)
}
