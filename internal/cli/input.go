// Package cli handles cmd line input for testing the spell checking and
// suggestion features in real time.
package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/quillforge/spellserve/internal/utils"
	"github.com/quillforge/spellserve/pkg/spell"
)

// InputHandler processes user input from stdin, checking words and printing
// suggestions. Lines starting with '+' or '-' mutate the custom word list;
// ':stats' prints store sizes and ':quit' exits.
type InputHandler struct {
	checker      spell.IChecker
	maxDistance  int
	suggestLimit int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(checker spell.IChecker, maxDistance, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		checker:      checker,
		maxDistance:  maxDistance,
		suggestLimit: limit,
		noFilter:     noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and passes the
// trimmed input to handleInput for processing. The loop terminates on a read
// error or the ':quit' command.
func (h *InputHandler) Start() error {
	log.Print("SpellServe CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to check it (+word adds, -word removes, :stats, :quit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !h.handleInput(line) {
			return nil
		}
	}
}

// handleInput processes a single command line. Returns false when the loop
// should stop.
func (h *InputHandler) handleInput(line string) bool {
	switch {
	case line == ":quit":
		return false
	case line == ":stats":
		for k, v := range h.checker.Stats() {
			log.Printf("%s: %d", k, v)
		}
		return true
	case strings.HasPrefix(line, "+"):
		word := strings.TrimSpace(line[1:])
		if word == "" {
			log.Error("Nothing to add")
			return true
		}
		h.checker.AddCustomWord(word)
		log.Printf("added %q to custom words", word)
		return true
	case strings.HasPrefix(line, "-"):
		word := strings.TrimSpace(line[1:])
		if word == "" {
			log.Error("Nothing to remove")
			return true
		}
		h.checker.RemoveCustomWord(word)
		log.Printf("removed %q from custom words", word)
		return true
	}

	h.checkWord(line)
	return true
}

// checkWord reports whether a word is known and, when it is not, prints the
// closest suggestions.
func (h *InputHandler) checkWord(word string) {
	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter && !utils.IsValidInput(word) {
		log.Infof("Ignoring input: '%s'", word)
		return
	}

	if h.checker.IsCorrect(word) {
		log.Printf("%q is spelled correctly", word)
		return
	}

	results := h.checker.Suggest(word, h.maxDistance)
	if h.suggestLimit > 0 && len(results) > h.suggestLimit {
		results = results[:h.suggestLimit]
	}
	if len(results) == 0 {
		log.Printf("%q is unknown, no suggestions within distance %d", word, h.maxDistance)
		return
	}

	log.Printf("%q is unknown, did you mean:", word)
	for _, r := range results {
		log.Printf("  %s (distance %d)", r.Word, r.Distance)
	}
}
