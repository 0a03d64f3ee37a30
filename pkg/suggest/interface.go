// Package suggest is the core store, composing the word and phrase tries into the completion API.
package suggest

// IStore defines the operations the server and CLI drive a store through
type IStore interface {
	// InsertWord adds a single word to the word vocabulary
	InsertWord(word string) (InsertResult, error)

	// InsertPhrase adds a phrase to the phrase vocabulary
	InsertPhrase(phrase string) (InsertResult, error)

	// SearchWord reports whether the exact word is stored
	SearchWord(word string) bool

	// SearchPhrase reports whether the exact phrase is stored
	SearchPhrase(phrase string) bool

	// AutocompleteWords returns up to limit stored words starting with query
	AutocompleteWords(query string, limit int) ([]string, error)

	// AutocompletePhrases returns up to limit stored phrases starting with query
	AutocompletePhrases(query string, limit int) ([]string, error)

	// Stats returns node and entry counters for both vocabularies
	Stats() Stats

	// Clear drops every word and phrase
	Clear()

	// LoadPreset bulk inserts phrases and returns how many were new
	LoadPreset(phrases []string) int

	// LoadWords bulk inserts words and returns how many were new
	LoadWords(words []string) int

	// Dump visits every stored entry of one vocabulary in order
	Dump(kind Kind, fn func(entry string) bool)
}
