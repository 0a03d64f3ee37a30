/*
Package server implements msgpack IPC for the word and phrase store.

Clients write a stream of msgpack maps to stdin and read one response map per
request from stdout. Every request carries an ID that is echoed back, and an
action selecting the store operation.

# IPC

On start the server writes a ready status:

	{"status": "ready"}

Insert a word or phrase:

	{"id": "1", "action": "insert_word", "text": "cat"}
	{"id": "1", "ok": true, "entry": "cat", "msg": "word 'cat' added"}

Exact search:

	{"id": "2", "action": "search_phrase", "text": "go fishing"}
	{"id": "2", "exists": true}

Completion returns suggestions in lexicographic order with their position
as rank. A missing limit uses the configured default; larger limits are
clamped to max_limit:

	{"id": "3", "action": "complete_words", "text": "ca", "l": 20}
	{"id": "3", "s": [{"w": "cap", "r": 1}, {"w": "car", "r": 2}], "c": 2, "t": 12}

Bulk loading and reset:

	{"id": "4", "action": "load_preset", "entries": ["go fishing", "buy bait"]}
	{"id": "5", "action": "load_default"}
	{"id": "6", "action": "clear"}
	{"id": "7", "action": "stats"}

Failures are reported as ErrorResponse with code 400 for invalid input and
500 for internal errors.
*/
package server

// Supported request actions
const (
	ActionInsertWord      = "insert_word"
	ActionInsertPhrase    = "insert_phrase"
	ActionSearchWord      = "search_word"
	ActionSearchPhrase    = "search_phrase"
	ActionCompleteWords   = "complete_words"
	ActionCompletePhrases = "complete_phrases"
	ActionStats           = "stats"
	ActionClear           = "clear"
	ActionLoadPreset      = "load_preset"
	ActionLoadDefault     = "load_default"
	ActionHealth          = "health"
)

// Request is the single message shape clients send
type Request struct {
	ID      string   `msgpack:"id"`
	Action  string   `msgpack:"action"`
	Text    string   `msgpack:"text,omitempty"`
	Limit   int      `msgpack:"l,omitempty"`
	Entries []string `msgpack:"entries,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompletionResponse - completion response, TimeTaken in microseconds
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// InsertResponse - insert outcome, duplicates have Inserted false
type InsertResponse struct {
	ID       string `msgpack:"id"`
	Inserted bool   `msgpack:"ok"`
	Entry    string `msgpack:"entry"`
	Message  string `msgpack:"msg"`
}

// SearchResponse - exact search outcome
type SearchResponse struct {
	ID     string `msgpack:"id"`
	Exists bool   `msgpack:"exists"`
}

// StatsResponse - store counters
type StatsResponse struct {
	ID           string         `msgpack:"id"`
	TotalNodes   int            `msgpack:"total_nodes"`
	TotalWords   int            `msgpack:"total_words"`
	TotalPhrases int            `msgpack:"total_phrases"`
	Cache        map[string]int `msgpack:"cache,omitempty"`
}

// StatusResponse - clear, load and health replies
type StatusResponse struct {
	ID      string `msgpack:"id,omitempty"`
	Status  string `msgpack:"status"`
	Message string `msgpack:"msg,omitempty"`
	Loaded  int    `msgpack:"loaded,omitempty"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
