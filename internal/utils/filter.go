package utils

import "unicode"

// IsSeparator checks if a rune is a separator character
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/'
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks if a string contains special characters
// (non-alphanumeric characters excluding common separators and apostrophes,
// which appear in contractions)
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsSeparator(r) && r != '\'' {
			return true
		}
	}
	return false
}

// IsValidInput checks if input is worth spell checking.
// Returns false for strings that are only numbers, contain special
// characters, or are repetitive keyboard noise.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}

// IsRepetitive checks if a string consists of one repeated character
// (e.g. "aaa", "www"), which is typing noise rather than a word
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}
