package suggest

import (
	"sync"

	"github.com/bastiangx/triestore/pkg/trie"
)

// Kind selects one of the two vocabularies a Store keeps.
type Kind int

const (
	Words Kind = iota
	Phrases
)

func (k Kind) String() string {
	switch k {
	case Words:
		return "word"
	case Phrases:
		return "phrase"
	default:
		return "unknown"
	}
}

// vocabulary pairs one trie with its lock and optional completion cache.
// Word and phrase vocabularies lock independently.
type vocabulary struct {
	kind  Kind
	mu    sync.RWMutex
	trie  *trie.Trie
	cache *CompletionCache
}

func newVocabulary(kind Kind, cacheSize int) *vocabulary {
	v := &vocabulary{
		kind: kind,
		trie: trie.New(),
	}
	if cacheSize > 0 {
		v.cache = NewCompletionCache(cacheSize)
	}
	return v
}

func (v *vocabulary) insert(s string) (bool, string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.insertLocked(s)
}

func (v *vocabulary) insertLocked(s string) (bool, string, error) {
	inserted, err := v.trie.Insert(s)
	if err != nil {
		return false, "", err
	}
	entry := trie.Normalize(s)
	if inserted && v.cache != nil {
		v.cache.Invalidate(entry)
	}
	return inserted, entry, nil
}

// insertAll inserts entries in order under one lock, skipping blank ones, and
// returns how many were new.
func (v *vocabulary) insertAll(entries []string) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	added := 0
	for _, e := range entries {
		inserted, _, err := v.insertLocked(e)
		if err != nil {
			continue
		}
		if inserted {
			added++
		}
	}
	return added
}

func (v *vocabulary) contains(s string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.trie.Contains(s)
}

func (v *vocabulary) suggest(query string, limit int) ([]string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	key := trie.Normalize(query)
	if v.cache != nil && key != "" && limit > 0 {
		if results, ok := v.cache.Get(key, limit); ok {
			return results, nil
		}
	}
	results, err := v.trie.Suggest(key, limit)
	if err != nil {
		return nil, err
	}
	if v.cache != nil {
		v.cache.Put(key, limit, results)
	}
	return results, nil
}

// reset replaces the trie with a fresh one and empties the cache.
func (v *vocabulary) reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.trie = trie.New()
	if v.cache != nil {
		v.cache.Reset()
	}
}

func (v *vocabulary) walk(fn func(string) bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	v.trie.Walk(fn)
}
