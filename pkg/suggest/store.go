package suggest

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// DefaultLimit is the number of suggestions returned when a caller does not
// ask for a specific amount.
const DefaultLimit = 20

// InsertResult describes the outcome of a single insert. Duplicates are not
// errors; Inserted is false and Message says so.
type InsertResult struct {
	Inserted bool
	Entry    string
	Message  string
}

// Stats holds the aggregate counters of a Store. TotalNodes counts the root
// node of each trie, so an empty store reports 2.
type Stats struct {
	TotalNodes   int
	TotalWords   int
	TotalPhrases int
}

// Store owns the word trie and the phrase trie. It is safe for concurrent
// use; each vocabulary is serialized on its own lock.
type Store struct {
	words   *vocabulary
	phrases *vocabulary
}

// NewStore creates an empty store without a completion cache.
func NewStore() *Store {
	return NewCachedStore(0)
}

// NewCachedStore creates an empty store whose vocabularies each memoize up to
// cacheSize suggestion lists. A non-positive size disables caching.
func NewCachedStore(cacheSize int) *Store {
	return &Store{
		words:   newVocabulary(Words, cacheSize),
		phrases: newVocabulary(Phrases, cacheSize),
	}
}

func (s *Store) vocab(kind Kind) *vocabulary {
	if kind == Phrases {
		return s.phrases
	}
	return s.words
}

func (s *Store) InsertWord(word string) (InsertResult, error) {
	return s.insert(s.words, word)
}

func (s *Store) InsertPhrase(phrase string) (InsertResult, error) {
	return s.insert(s.phrases, phrase)
}

func (s *Store) insert(v *vocabulary, text string) (InsertResult, error) {
	inserted, entry, err := v.insert(text)
	if err != nil {
		return InsertResult{}, fmt.Errorf("%s: %w", v.kind, err)
	}
	res := InsertResult{Inserted: inserted, Entry: entry}
	if inserted {
		res.Message = fmt.Sprintf("%s '%s' added", v.kind, entry)
	} else {
		res.Message = fmt.Sprintf("%s '%s' already exists", v.kind, entry)
	}
	log.Debug(res.Message)
	return res, nil
}

func (s *Store) SearchWord(word string) bool {
	return s.words.contains(word)
}

func (s *Store) SearchPhrase(phrase string) bool {
	return s.phrases.contains(phrase)
}

func (s *Store) AutocompleteWords(query string, limit int) ([]string, error) {
	return s.autocomplete(s.words, query, limit)
}

func (s *Store) AutocompletePhrases(query string, limit int) ([]string, error) {
	return s.autocomplete(s.phrases, query, limit)
}

func (s *Store) autocomplete(v *vocabulary, query string, limit int) ([]string, error) {
	results, err := v.suggest(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s completion: %w", v.kind, err)
	}
	return results, nil
}

// Stats reads both vocabularies under their read locks.
func (s *Store) Stats() Stats {
	s.words.mu.RLock()
	defer s.words.mu.RUnlock()
	s.phrases.mu.RLock()
	defer s.phrases.mu.RUnlock()

	return Stats{
		TotalNodes:   s.words.trie.Nodes() + s.phrases.trie.Nodes(),
		TotalWords:   s.words.trie.Len(),
		TotalPhrases: s.phrases.trie.Len(),
	}
}

// CacheStats merges the completion cache counters of both vocabularies.
// It returns an empty map when caching is disabled.
func (s *Store) CacheStats() map[string]int {
	stats := make(map[string]int)
	for _, v := range []*vocabulary{s.words, s.phrases} {
		if v.cache == nil {
			continue
		}
		for k, n := range v.cache.Stats() {
			stats[v.kind.String()+"."+k] = n
		}
	}
	return stats
}

// Clear replaces both tries with empty ones.
func (s *Store) Clear() {
	s.words.reset()
	s.phrases.reset()
	log.Debug("Cleared word and phrase tries")
}

// LoadPreset inserts phrases in order and returns how many were not already
// present. Blank entries are skipped.
func (s *Store) LoadPreset(phrases []string) int {
	added := s.phrases.insertAll(phrases)
	log.Debugf("Loaded preset: %d of %d phrases new", added, len(phrases))
	return added
}

// LoadWords is LoadPreset for the word vocabulary.
func (s *Store) LoadWords(words []string) int {
	added := s.words.insertAll(words)
	log.Debugf("Loaded words: %d of %d new", added, len(words))
	return added
}

func (s *Store) Dump(kind Kind, fn func(entry string) bool) {
	s.vocab(kind).walk(fn)
}
