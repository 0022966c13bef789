/*
Package server implements msgpack IPC for the spell checking services.

The server provides a minimal interface for spell checking, suggestions,
prefix completion, text statistics, and relationship graph layout using
msgpack serialization over stdin/stdout.

Messages are processed synchronously, one at a time, with timing info
included in responses. The engines behind the server are unsynchronized;
the one-request-at-a-time loop is what serializes access to them.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message
contains an ID field, a command, and fields specific to the operation.

Check whether a word is known:

	{"id": "req_001", "cmd": "check", "w": "alchemy"}

Ask for suggestions within an edit distance budget:

	{"id": "req_002", "cmd": "suggest", "w": "alchemey", "d": 2, "l": 10}

The server responds with suggestions sorted by distance, then alphabetically:

	{"id": "req_002", "s": [{"w": "alchemy", "d": 1}], "c": 1, "t": 2}

Custom word management mirrors the editor's personal dictionary:

	{"id": "dict_001", "cmd": "add_word", "w": "kirara"}
	{"id": "dict_002", "cmd": "remove_word", "w": "kirara"}
	{"id": "dict_003", "cmd": "save_custom"}

Config messages allow adjustment of the boundary caps without restart; other
settings are read from the TOML file at startup:

	{"id": "cfg_001", "cmd": "config_update", "max_limit": 20}

# Boundary caps

Suggestion and completion lists are truncated here to the configured
max_limit, and words longer than max_word_len are rejected before they reach
the engine. Caps only ever shorten a response; the ordering the engine
established is preserved.
*/
package server

// Request is an incoming client message. Command selects the operation;
// the remaining fields are read per command.
type Request struct {
	ID      string `msgpack:"id"`
	Command string `msgpack:"cmd"`

	// check / suggest / complete / add_word / remove_word
	Word        string `msgpack:"w,omitempty"`
	MaxDistance *int   `msgpack:"d,omitempty"`
	Limit       int    `msgpack:"l,omitempty"`

	// stats
	Text string `msgpack:"text,omitempty"`

	// config_update
	MaxLimit   *int `msgpack:"max_limit,omitempty"`
	MaxWordLen *int `msgpack:"max_word_len,omitempty"`

	// layout
	Nodes       []LayoutNode `msgpack:"nodes,omitempty"`
	Edges       []LayoutEdge `msgpack:"edges,omitempty"`
	Width       float64      `msgpack:"width,omitempty"`
	Height      float64      `msgpack:"height,omitempty"`
	Iterations  int          `msgpack:"iters,omitempty"`
	Temperature float64      `msgpack:"temp,omitempty"`
	Seed        int64        `msgpack:"seed,omitempty"`
}

// CheckResponse answers a check request.
type CheckResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	Correct   bool   `msgpack:"ok"`
	TimeTaken int64  `msgpack:"t"`
}

// ResponseSuggestion is one suggestion in a suggest response.
type ResponseSuggestion struct {
	Word     string `msgpack:"w"`
	Distance int    `msgpack:"d"`
}

// SuggestResponse carries ranked suggestions for a misspelled word.
type SuggestResponse struct {
	ID          string               `msgpack:"id"`
	Word        string               `msgpack:"w"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}

// CompleteResponse carries prefix completions.
type CompleteResponse struct {
	ID          string   `msgpack:"id"`
	Prefix      string   `msgpack:"p"`
	Completions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// WordResponse acknowledges add_word / remove_word requests.
type WordResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Word   string `msgpack:"w"`
}

// StatsResponse carries text statistics for a stats request.
type StatsResponse struct {
	ID            string `msgpack:"id"`
	Words         int    `msgpack:"words"`
	Chars         int    `msgpack:"chars"`
	CharsNoSpaces int    `msgpack:"chars_ns"`
	ReadTime      string `msgpack:"read_time"`
	TimeTaken     int64  `msgpack:"t"`
}

// LayoutNode is an input node for a layout request. Fixed nodes keep their
// given position.
type LayoutNode struct {
	ID    int     `msgpack:"id"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Fixed bool    `msgpack:"fixed,omitempty"`
}

// LayoutEdge is an input edge for a layout request.
type LayoutEdge struct {
	NodeA     int     `msgpack:"a"`
	NodeB     int     `msgpack:"b"`
	Intensity float64 `msgpack:"i"`
}

// LayoutPosition is one node placement in a layout response.
type LayoutPosition struct {
	ID int     `msgpack:"id"`
	X  float64 `msgpack:"x"`
	Y  float64 `msgpack:"y"`
}

// LayoutResponse carries the computed node positions.
type LayoutResponse struct {
	ID        string           `msgpack:"id"`
	Positions []LayoutPosition `msgpack:"pos"`
	Count     int              `msgpack:"c"`
	TimeTaken int64            `msgpack:"t"`
}

// SaveResponse acknowledges a save_custom request.
type SaveResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Count  int    `msgpack:"c"`
	Path   string `msgpack:"path"`
}

// ConfigResponse acknowledges a config_update request.
type ConfigResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	ID     string `msgpack:"id"`
	Error  string `msgpack:"error"`
	Status int    `msgpack:"status"`
}
