package trie

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// node is a single trie position. terminal marks that the rune path from the
// root to this node is a stored entry.
type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// sortedKeys returns the child runes in ascending order.
func (n *node) sortedKeys() []rune {
	keys := maps.Keys(n.children)
	slices.Sort(keys)
	return keys
}
