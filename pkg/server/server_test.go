package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/triestore/pkg/config"
	"github.com/bastiangx/triestore/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

// run feeds reqs through a fresh server and returns a decoder positioned
// after the ready status.
func run(t *testing.T, store suggest.IStore, cfg *config.Config, reqs ...Request) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}

	srv := NewServerWithIO(store, cfg, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	return dec
}

func decode[T any](t *testing.T, dec *msgpack.Decoder) T {
	t.Helper()
	var v T
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestInsertSearchComplete(t *testing.T) {
	store := suggest.NewStore()
	dec := run(t, store, nil,
		Request{ID: "1", Action: ActionInsertWord, Text: "cat"},
		Request{ID: "2", Action: ActionInsertWord, Text: "car"},
		Request{ID: "3", Action: ActionInsertWord, Text: "Cat"},
		Request{ID: "4", Action: ActionSearchWord, Text: "cat"},
		Request{ID: "5", Action: ActionSearchPhrase, Text: "cat"},
		Request{ID: "6", Action: ActionCompleteWords, Text: "ca"},
	)

	first := decode[InsertResponse](t, dec)
	assert.Equal(t, InsertResponse{ID: "1", Inserted: true, Entry: "cat", Message: "word 'cat' added"}, first)
	decode[InsertResponse](t, dec)
	dup := decode[InsertResponse](t, dec)
	assert.False(t, dup.Inserted)
	assert.Equal(t, "word 'cat' already exists", dup.Message)

	assert.True(t, decode[SearchResponse](t, dec).Exists)
	assert.False(t, decode[SearchResponse](t, dec).Exists)

	comp := decode[CompletionResponse](t, dec)
	assert.Equal(t, "6", comp.ID)
	assert.Equal(t, 2, comp.Count)
	assert.Equal(t, []CompletionSuggestion{{Word: "car", Rank: 1}, {Word: "cat", Rank: 2}}, comp.Suggestions)
}

func TestCompleteLimits(t *testing.T) {
	store := suggest.NewStore()
	words := make([]string, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		words = append(words, "x"+string(r))
	}
	store.LoadWords(words)

	cfg := config.DefaultConfig()
	cfg.Server.DefaultLimit = 3
	cfg.Server.MaxLimit = 10
	cfg.Server.MaxQuery = 4

	dec := run(t, store, cfg,
		Request{ID: "default", Action: ActionCompleteWords, Text: "x"},
		Request{ID: "clamped", Action: ActionCompleteWords, Text: "x", Limit: 100},
		Request{ID: "negative", Action: ActionCompleteWords, Text: "x", Limit: -1},
		Request{ID: "long", Action: ActionCompleteWords, Text: "xxxxx"},
		Request{ID: "blank", Action: ActionCompletePhrases, Text: "  "},
	)

	assert.Equal(t, 3, decode[CompletionResponse](t, dec).Count)
	assert.Equal(t, 10, decode[CompletionResponse](t, dec).Count)
	for _, id := range []string{"negative", "long", "blank"} {
		e := decode[ErrorResponse](t, dec)
		assert.Equal(t, id, e.ID)
		assert.Equal(t, 400, e.Code)
	}
}

func TestInsertBlankIsBadRequest(t *testing.T) {
	dec := run(t, suggest.NewStore(), nil, Request{ID: "x", Action: ActionInsertPhrase, Text: " "})
	e := decode[ErrorResponse](t, dec)
	assert.Equal(t, 400, e.Code)
	assert.Contains(t, e.Error, "invalid input")
}

func TestLoadStatsClear(t *testing.T) {
	store := suggest.NewCachedStore(4)
	dec := run(t, store, nil,
		Request{ID: "1", Action: ActionLoadPreset, Entries: []string{"go fishing", "go fishing", "buy bait"}},
		Request{ID: "2", Action: ActionStats},
		Request{ID: "3", Action: ActionClear},
		Request{ID: "4", Action: ActionStats},
		Request{ID: "5", Action: ActionLoadDefault},
		Request{ID: "6", Action: ActionCompletePhrases, Text: "tight l", Limit: 5},
	)

	load := decode[StatusResponse](t, dec)
	assert.Equal(t, 2, load.Loaded)
	assert.Equal(t, "loaded 2 new phrases", load.Message)

	stats := decode[StatsResponse](t, dec)
	assert.Equal(t, 2, stats.TotalPhrases)
	assert.NotEmpty(t, stats.Cache)

	assert.Equal(t, "ok", decode[StatusResponse](t, dec).Status)
	cleared := decode[StatsResponse](t, dec)
	assert.Equal(t, 2, cleared.TotalNodes)
	assert.Zero(t, cleared.TotalWords)
	assert.Zero(t, cleared.TotalPhrases)

	assert.Positive(t, decode[StatusResponse](t, dec).Loaded)
	comp := decode[CompletionResponse](t, dec)
	require.NotEmpty(t, comp.Suggestions)
	assert.Equal(t, "tight lines", comp.Suggestions[0].Word)
}

func TestUnknownAndHealth(t *testing.T) {
	dec := run(t, suggest.NewStore(), nil,
		Request{ID: "1", Action: "fly"},
		Request{ID: "2", Action: ActionHealth},
	)
	e := decode[ErrorResponse](t, dec)
	assert.Equal(t, "Unknown action: fly", e.Error)
	assert.Equal(t, 400, e.Code)
	assert.Equal(t, StatusResponse{ID: "2", Status: "ok"}, decode[StatusResponse](t, dec))
}

func TestMalformedInputStops(t *testing.T) {
	var out bytes.Buffer
	in := bytes.NewBuffer([]byte{0xc1})
	err := NewServerWithIO(suggest.NewStore(), nil, in, &out).Start()
	assert.Error(t, err)

	dec := msgpack.NewDecoder(&out)
	decode[StatusResponse](t, dec)
	assert.Equal(t, 400, decode[ErrorResponse](t, dec).Code)
}
