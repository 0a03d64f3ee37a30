// Package cli handles cmd line input for driving a store by hand, for DBG and testing
package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/triestore/internal/logger"
	"github.com/bastiangx/triestore/internal/utils"
	"github.com/bastiangx/triestore/pkg/dictionary"
	"github.com/bastiangx/triestore/pkg/suggest"
	"github.com/charmbracelet/log"
)

const usage = `commands:
  +w <word>      add a word
  +p <phrase>    add a phrase
  ?w <word>      check a word exists
  ?p <phrase>    check a phrase exists
  w <prefix>     complete words
  p <prefix>     complete phrases
  stats          show counters
  load           load the sample phrases
  dump [w|p]     list stored words or phrases
  clear          remove everything
  help           show this help`

// InputHandler reads commands line by line and runs them against a store.
// Completion queries are filtered like the server's by default.
type InputHandler struct {
	store        suggest.IStore
	suggestLimit int
	noFilter     bool
	requestCount int
	out          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(store suggest.IStore, limit int, noFilter bool) *InputHandler {
	return NewInputHandlerWithOutput(store, limit, noFilter, os.Stderr)
}

// NewInputHandlerWithOutput is NewInputHandler writing to w
func NewInputHandlerWithOutput(store suggest.IStore, limit int, noFilter bool, w io.Writer) *InputHandler {
	if limit <= 0 {
		limit = suggest.DefaultLimit
	}
	return &InputHandler{
		store:        store,
		suggestLimit: limit,
		noFilter:     noFilter,
		out:          logger.NewWithConfig(w, "", log.GetLevel(), false, false, log.TextFormatter),
	}
}

// Start begins the interface loop on stdin.
func (h *InputHandler) Start() error {
	h.out.Print("triestore CLI [BETA]")
	h.out.Print("type a command and press Enter, 'help' lists them (Ctrl+C to exit):")
	return h.Run(os.Stdin)
}

// Run processes commands from r until it is exhausted.
func (h *InputHandler) Run(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput splits a line into command and argument and runs it.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "+w":
		h.insert(arg, h.store.InsertWord)
	case "+p":
		h.insert(arg, h.store.InsertPhrase)
	case "?w":
		h.out.Printf("word '%s' exists: %t", arg, h.store.SearchWord(arg))
	case "?p":
		h.out.Printf("phrase '%s' exists: %t", arg, h.store.SearchPhrase(arg))
	case "w":
		h.complete(arg, suggest.Words, h.store.AutocompleteWords)
	case "p":
		h.complete(arg, suggest.Phrases, h.store.AutocompletePhrases)
	case "stats":
		st := h.store.Stats()
		h.out.Print("stats", "nodes", st.TotalNodes, "words", st.TotalWords, "phrases", st.TotalPhrases)
	case "load":
		loaded := h.store.LoadPreset(dictionary.DefaultPhrases())
		h.out.Printf("Loaded sample phrases (%d new)", loaded)
	case "dump":
		h.dump(arg)
	case "clear":
		h.store.Clear()
		h.out.Print("All words and phrases removed")
	case "help":
		h.out.Print(usage)
	default:
		h.out.Errorf("Unknown command: %s (try 'help')", cmd)
	}
}

func (h *InputHandler) insert(text string, insert func(string) (suggest.InsertResult, error)) {
	res, err := insert(text)
	if err != nil {
		h.out.Errorf("Insert failed: %v", err)
		return
	}
	h.out.Print(res.Message)
}

// complete validates the query and prints numbered suggestions.
func (h *InputHandler) complete(query string, kind suggest.Kind, complete func(string, int) ([]string, error)) {
	if !h.noFilter && !utils.IsValidInput(query) {
		h.out.Warnf("No suggestions found for prefix: '%s' (filtered out)", query)
		return
	}

	start := time.Now()
	results, err := complete(query, h.suggestLimit)
	elapsed := time.Since(start)
	if err != nil {
		h.out.Errorf("Completion failed: %v", err)
		return
	}
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, query)

	if len(results) == 0 {
		h.out.Warnf("No %ss found for prefix: '%s'", kind, query)
		return
	}
	h.out.Printf("Found %d %ss for prefix '%s':", len(results), kind, query)
	for i, s := range results {
		h.out.Printf("%2d. %s", i+1, s)
	}
}

func (h *InputHandler) dump(which string) {
	kind := suggest.Words
	if which == "p" {
		kind = suggest.Phrases
	}
	n := 0
	h.store.Dump(kind, func(entry string) bool {
		n++
		h.out.Printf("%4d. %s", n, entry)
		return true
	})
	if n == 0 {
		h.out.Warnf("No %ss stored", kind)
	}
}
