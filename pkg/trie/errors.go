package trie

import "errors"

// ErrInvalidInput is returned when a blank string is given where a value is
// required, or when a suggestion limit is not positive.
var ErrInvalidInput = errors.New("invalid input")
