package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/quillforge/spellserve/pkg/config"
	"github.com/quillforge/spellserve/pkg/dictionary"
	"github.com/quillforge/spellserve/pkg/graph"
	"github.com/quillforge/spellserve/pkg/spell"
	"github.com/quillforge/spellserve/pkg/suggest"
	"github.com/quillforge/spellserve/pkg/textstats"
)

// Server handles the IPC for the spell checking services.
type Server struct {
	checker    spell.IChecker
	completer  *suggest.Completer
	cfg        *config.Config
	configPath string
	decoder    *msgpack.Decoder
	encoder    *msgpack.Encoder
}

// NewServer creates a new server using stdin/stdout for IPC. configPath is
// where config_update requests persist to; empty keeps updates in memory.
func NewServer(checker spell.IChecker, completer *suggest.Completer, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(checker, completer, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit streams, used by tests and
// hosts that pipe through something other than stdin/stdout.
func NewServerWithIO(checker spell.IChecker, completer *suggest.Completer, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		checker:    checker,
		completer:  completer,
		cfg:        cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Requests are handled one at a
// time on the calling goroutine, which is what serializes access to the
// unsynchronized engines behind the server.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	// Signal that the server is ready
	s.sendResponse(map[string]string{"status": "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	switch request.Command {
	case "check":
		s.handleCheck(request)
	case "suggest":
		s.handleSuggest(request)
	case "complete":
		s.handleComplete(request)
	case "add_word":
		s.handleAddWord(request)
	case "remove_word":
		s.handleRemoveWord(request)
	case "stats":
		s.handleStats(request)
	case "layout":
		s.handleLayout(request)
	case "save_custom":
		s.handleSaveCustom(request)
	case "config_update":
		s.handleConfigUpdate(request)
	case "health":
		s.sendResponse(map[string]string{"id": request.ID, "status": "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// validWord rejects words the boundary refuses to marshal: empty input and
// words longer than the configured byte cap.
func (s *Server) validWord(request Request) bool {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in request")
		return false
	}
	if len(request.Word) > s.cfg.Server.MaxWordLen {
		s.sendError(request.ID, fmt.Sprintf("Word exceeds maximum length of %d", s.cfg.Server.MaxWordLen), 400)
		log.Debug("Word is too long in request")
		return false
	}
	return true
}

func (s *Server) handleCheck(request Request) {
	if !s.validWord(request) {
		return
	}

	start := time.Now()
	correct := s.checker.IsCorrect(request.Word)
	elapsed := time.Since(start)

	s.sendResponse(CheckResponse{
		ID:        request.ID,
		Word:      request.Word,
		Correct:   correct,
		TimeTaken: elapsed.Milliseconds(),
	})
}

func (s *Server) handleSuggest(request Request) {
	if !s.validWord(request) {
		return
	}

	maxDistance := s.cfg.Spell.MaxDistance
	if request.MaxDistance != nil && *request.MaxDistance >= 0 {
		maxDistance = *request.MaxDistance
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	results := s.checker.Suggest(request.Word, maxDistance)
	elapsed := time.Since(start)

	// The engine ordering is final; the cap only shortens the tail.
	if len(results) > limit {
		results = results[:limit]
	}

	suggestions := make([]ResponseSuggestion, len(results))
	for i, r := range results {
		suggestions[i] = ResponseSuggestion{Word: r.Word, Distance: r.Distance}
	}

	s.sendResponse(SuggestResponse{
		ID:          request.ID,
		Word:        request.Word,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Milliseconds(),
	})
}

func (s *Server) handleComplete(request Request) {
	if !s.validWord(request) {
		return
	}
	if s.completer == nil {
		s.sendError(request.ID, "Completion is not enabled", 400)
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	completions := s.completer.Complete(request.Word, limit)
	elapsed := time.Since(start)

	words := make([]string, len(completions))
	for i, c := range completions {
		words[i] = c.Word
	}

	s.sendResponse(CompleteResponse{
		ID:          request.ID,
		Prefix:      request.Word,
		Completions: words,
		Count:       len(words),
		TimeTaken:   elapsed.Milliseconds(),
	})
}

func (s *Server) handleAddWord(request Request) {
	if !s.validWord(request) {
		return
	}
	s.checker.AddCustomWord(request.Word)
	s.sendResponse(WordResponse{ID: request.ID, Status: "ok", Word: request.Word})
}

func (s *Server) handleRemoveWord(request Request) {
	if !s.validWord(request) {
		return
	}
	s.checker.RemoveCustomWord(request.Word)
	s.sendResponse(WordResponse{ID: request.ID, Status: "ok", Word: request.Word})
}

func (s *Server) handleStats(request Request) {
	start := time.Now()
	words := textstats.WordCount(request.Text)
	chars := textstats.CharacterCount(request.Text, true)
	charsNoSpaces := textstats.CharacterCount(request.Text, false)
	readTime := textstats.ReadTime(words, s.cfg.Stats.ReadWPM)
	elapsed := time.Since(start)

	s.sendResponse(StatsResponse{
		ID:            request.ID,
		Words:         words,
		Chars:         chars,
		CharsNoSpaces: charsNoSpaces,
		ReadTime:      readTime,
		TimeTaken:     elapsed.Milliseconds(),
	})
}

func (s *Server) handleLayout(request Request) {
	if len(request.Nodes) == 0 {
		s.sendError(request.ID, "Missing 'nodes' parameter", 400)
		return
	}
	if request.Width <= 0 || request.Height <= 0 {
		s.sendError(request.ID, "Layout area must have positive width and height", 400)
		return
	}

	nodes := make([]graph.Node, len(request.Nodes))
	for i, n := range request.Nodes {
		nodes[i] = graph.Node{ID: n.ID, X: n.X, Y: n.Y, Fixed: n.Fixed}
	}
	edges := make([]graph.Edge, len(request.Edges))
	for i, e := range request.Edges {
		edges[i] = graph.Edge{NodeA: e.NodeA, NodeB: e.NodeB, Intensity: e.Intensity}
	}

	start := time.Now()
	engine := graph.NewEngine(nodes, edges, request.Width, request.Height, request.Seed)
	positions := engine.Compute(request.Iterations, request.Temperature)
	elapsed := time.Since(start)

	out := make([]LayoutPosition, len(positions))
	for i, p := range positions {
		out[i] = LayoutPosition{ID: p.ID, X: p.X, Y: p.Y}
	}

	s.sendResponse(LayoutResponse{
		ID:        request.ID,
		Positions: out,
		Count:     len(out),
		TimeTaken: elapsed.Milliseconds(),
	})
}

// handleSaveCustom writes the custom word list to the configured custom path
// so it survives a restart.
func (s *Server) handleSaveCustom(request Request) {
	path := s.cfg.Spell.CustomPath
	if path == "" {
		s.sendError(request.ID, "No custom word list path configured", 400)
		return
	}

	words := s.checker.CustomWords()
	if err := dictionary.SaveFile(path, words); err != nil {
		s.sendError(request.ID, fmt.Sprintf("Saving custom words: %v", err), 500)
		return
	}

	s.sendResponse(SaveResponse{
		ID:     request.ID,
		Status: "ok",
		Count:  len(words),
		Path:   path,
	})
}

// handleConfigUpdate adjusts the boundary caps without a restart. Updates are
// persisted when the server knows its config path.
func (s *Server) handleConfigUpdate(request Request) {
	if request.MaxLimit == nil && request.MaxWordLen == nil {
		s.sendError(request.ID, "No config fields to update", 400)
		return
	}
	if request.MaxLimit != nil && *request.MaxLimit < 1 {
		s.sendError(request.ID, "max_limit must be positive", 400)
		return
	}
	if request.MaxWordLen != nil && *request.MaxWordLen < 1 {
		s.sendError(request.ID, "max_word_len must be positive", 400)
		return
	}

	if s.configPath == "" {
		if request.MaxLimit != nil {
			s.cfg.Server.MaxLimit = *request.MaxLimit
		}
		if request.MaxWordLen != nil {
			s.cfg.Server.MaxWordLen = *request.MaxWordLen
		}
	} else if err := s.cfg.Update(s.configPath, request.MaxLimit, request.MaxWordLen); err != nil {
		s.sendError(request.ID, fmt.Sprintf("Updating config: %v", err), 500)
		return
	}

	s.sendResponse(ConfigResponse{ID: request.ID, Status: "ok"})
}

// sendResponse encodes the given response as msgpack and writes it to the
// client stream.
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:     id,
		Error:  message,
		Status: code,
	})
}
