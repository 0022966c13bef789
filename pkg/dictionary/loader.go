// Package dictionary loads plain-text word lists for the spell checking and
// completion engines. One word per line; blank lines and '#' comments are
// skipped. The engines rebuild from these lists on every startup, so this is
// the only file format the repository knows about.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadFile reads a word list from disk.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	words, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s", len(words), path)
	return words, nil
}

// Load reads a word list from a reader.
func Load(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// SaveFile writes a word list to disk, one word per line. Used by hosts that
// persist the user's custom words between sessions.
func SaveFile(path string, words []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create word list %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range words {
		if word == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, word); err != nil {
			return fmt.Errorf("failed to write word list %s: %w", path, err)
		}
	}
	return w.Flush()
}
