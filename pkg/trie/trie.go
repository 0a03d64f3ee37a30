// Package trie implements the prefix tree behind word and phrase completion.
package trie

import (
	"fmt"
	"strings"
)

// Trie stores one vocabulary of normalized strings and answers exact and
// prefix queries over it. A Trie is not safe for concurrent use.
type Trie struct {
	root    *node
	entries int
	nodes   int
}

// New creates an empty trie holding only its root node.
func New() *Trie {
	return &Trie{root: newNode(), nodes: 1}
}

// Insert stores s and reports whether it was newly added. Inserting a string
// that is already present changes nothing and returns false.
func (t *Trie) Insert(s string) (bool, error) {
	key := Normalize(s)
	if key == "" {
		return false, fmt.Errorf("insert %q: %w", s, ErrInvalidInput)
	}
	runes := []rune(key)

	current := t.root
	depth := 0
	for ; depth < len(runes); depth++ {
		next, ok := current.children[runes[depth]]
		if !ok {
			break
		}
		current = next
	}

	if depth < len(runes) {
		// Build the missing suffix detached, then link it in one step so a
		// partial chain is never reachable from the root.
		head := newNode()
		tail := head
		for _, r := range runes[depth+1:] {
			child := newNode()
			tail.children[r] = child
			tail = child
		}
		current.children[runes[depth]] = head
		t.nodes += len(runes) - depth
		current = tail
	}

	if current.terminal {
		return false, nil
	}
	current.terminal = true
	t.entries++
	return true, nil
}

// Contains reports whether s, after normalization, is a stored entry. Strict
// prefixes of stored entries are not contained.
func (t *Trie) Contains(s string) bool {
	key := Normalize(s)
	if key == "" {
		return false
	}
	n := t.find(key)
	return n != nil && n.terminal
}

// Suggest returns up to limit stored entries that start with prefix, in
// lexicographic order. The prefix itself is included when it is stored.
func (t *Trie) Suggest(prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("suggest limit %d: %w", limit, ErrInvalidInput)
	}
	key := Normalize(prefix)
	if key == "" {
		return nil, fmt.Errorf("suggest prefix %q: %w", prefix, ErrInvalidInput)
	}

	results := []string{}
	start := t.find(key)
	if start == nil {
		return results, nil
	}
	buf := []rune(key)
	collect(start, buf, limit, &results)
	return results, nil
}

// Walk calls fn for every stored entry in lexicographic order until fn
// returns false.
func (t *Trie) Walk(fn func(entry string) bool) {
	walk(t.root, nil, fn)
}

// Len returns the number of distinct stored entries.
func (t *Trie) Len() int {
	return t.entries
}

// Nodes returns the number of allocated nodes, root included.
func (t *Trie) Nodes() int {
	return t.nodes
}

// Reset discards every entry and leaves a single fresh root.
func (t *Trie) Reset() {
	t.root = newNode()
	t.entries = 0
	t.nodes = 1
}

func (t *Trie) find(key string) *node {
	current := t.root
	for _, r := range key {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// collect appends terminal entries under n in pre-order, visiting children in
// ascending rune order, and stops once limit results are held.
func collect(n *node, path []rune, limit int, results *[]string) {
	if n.terminal {
		*results = append(*results, string(path))
		if len(*results) >= limit {
			return
		}
	}
	for _, r := range n.sortedKeys() {
		collect(n.children[r], append(path, r), limit, results)
		if len(*results) >= limit {
			return
		}
	}
}

func walk(n *node, path []rune, fn func(string) bool) bool {
	if n.terminal && !fn(string(path)) {
		return false
	}
	for _, r := range n.sortedKeys() {
		if !walk(n.children[r], append(path, r), fn) {
			return false
		}
	}
	return true
}

// String renders the stored entries, mainly for debugging.
func (t *Trie) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	t.Walk(func(entry string) bool {
		if !first {
			sb.WriteString(" ")
		}
		sb.WriteString(entry)
		first = false
		return true
	})
	sb.WriteString("]")
	return sb.String()
}
