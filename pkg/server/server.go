package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/triestore/internal/logger"
	"github.com/bastiangx/triestore/internal/utils"
	"github.com/bastiangx/triestore/pkg/config"
	"github.com/bastiangx/triestore/pkg/dictionary"
	"github.com/bastiangx/triestore/pkg/suggest"
	"github.com/bastiangx/triestore/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for a store
type Server struct {
	store        suggest.IStore
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(store suggest.IStore, cfg *config.Config) *Server {
	return NewServerWithIO(store, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w
func NewServerWithIO(store suggest.IStore, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		store:   store,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		logger:  logger.New("ipc"),
	}
}

// Start sends the ready status and serves requests until the input ends.
// A message that cannot be decoded ends the stream with an error, since
// framing after it is unknown.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requestCount++
		s.handleRequest(req)
	}
}

// handleRequest dispatches a request on its action
func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case ActionInsertWord:
		s.handleInsert(req, s.store.InsertWord)
	case ActionInsertPhrase:
		s.handleInsert(req, s.store.InsertPhrase)
	case ActionSearchWord:
		s.reply(SearchResponse{ID: req.ID, Exists: s.store.SearchWord(req.Text)})
	case ActionSearchPhrase:
		s.reply(SearchResponse{ID: req.ID, Exists: s.store.SearchPhrase(req.Text)})
	case ActionCompleteWords:
		s.handleComplete(req, s.store.AutocompleteWords)
	case ActionCompletePhrases:
		s.handleComplete(req, s.store.AutocompletePhrases)
	case ActionStats:
		s.handleStats(req)
	case ActionClear:
		s.store.Clear()
		s.reply(StatusResponse{ID: req.ID, Status: "ok", Message: "all words and phrases removed"})
	case ActionLoadPreset:
		s.handleLoad(req, req.Entries)
	case ActionLoadDefault:
		s.handleLoad(req, dictionary.DefaultPhrases())
	case ActionHealth:
		s.reply(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleInsert(req Request, insert func(string) (suggest.InsertResult, error)) {
	res, err := insert(req.Text)
	if err != nil {
		s.sendStoreError(req.ID, err)
		return
	}
	s.reply(InsertResponse{
		ID:       req.ID,
		Inserted: res.Inserted,
		Entry:    res.Entry,
		Message:  res.Message,
	})
}

// handleComplete validates the query, fills in the default limit and clamps
// it to max_limit before asking the store.
func (s *Server) handleComplete(req Request, complete func(string, int) ([]string, error)) {
	if maxLen := s.config.Server.MaxQuery; maxLen > 0 && len([]rune(req.Text)) > maxLen {
		s.sendError(req.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", maxLen), 400)
		s.logger.Debug("Query too long", "id", req.ID)
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = s.config.Server.DefaultLimit
	}
	if maxLimit := s.config.Server.MaxLimit; maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	start := time.Now()
	results, err := complete(req.Text, limit)
	elapsed := time.Since(start)
	if err != nil {
		s.sendStoreError(req.ID, err)
		return
	}

	ranks := utils.CreateRankList(len(results))
	suggestions := make([]CompletionSuggestion, len(results))
	for i, w := range results {
		suggestions[i] = CompletionSuggestion{Word: w, Rank: ranks[i]}
	}

	s.logger.Debugf("Completed '%s' with %d results in %v", req.Text, len(results), elapsed)
	s.reply(CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleStats(req Request) {
	stats := s.store.Stats()
	resp := StatsResponse{
		ID:           req.ID,
		TotalNodes:   stats.TotalNodes,
		TotalWords:   stats.TotalWords,
		TotalPhrases: stats.TotalPhrases,
	}
	if cs, ok := s.store.(interface{ CacheStats() map[string]int }); ok {
		if cache := cs.CacheStats(); len(cache) > 0 {
			resp.Cache = cache
		}
	}
	s.reply(resp)
}

func (s *Server) handleLoad(req Request, entries []string) {
	loaded := s.store.LoadPreset(entries)
	s.reply(StatusResponse{
		ID:      req.ID,
		Status:  "ok",
		Message: fmt.Sprintf("loaded %d new phrases", loaded),
		Loaded:  loaded,
	})
}

// sendStoreError maps invalid input to 400 and anything else to 500
func (s *Server) sendStoreError(id string, err error) {
	if errors.Is(err, trie.ErrInvalidInput) {
		s.sendError(id, err.Error(), 400)
		return
	}
	s.logger.Errorf("Request %s failed: %v", id, err)
	s.sendError(id, "Internal server error", 500)
}

func (s *Server) sendError(id, message string, code int) {
	s.reply(ErrorResponse{ID: id, Error: message, Code: code})
}

// reply sends a response, logging write failures
func (s *Server) reply(response any) {
	if err := s.send(response); err != nil {
		s.logger.Errorf("Writing response: %v", err)
	}
}

func (s *Server) send(response any) error {
	return s.encoder.Encode(response)
}
