package trie

import "sort"

// node is a single vertex of the trie. Every edge below it is labeled with
// one byte of a key; values holds whatever was stored at this exact path.
//
// A nil values slice marks a path-only node. The slice is never empty: it
// is nil, or it holds at least one stored value. That keeps "no value"
// distinguishable from a stored nil value.
type node struct {
	values   []Value
	children map[byte]*node
}

// newNode creates an empty path-only node.
func newNode() *node {
	return &node{}
}

// child returns the child reached over c, or nil if there is none.
func (n *node) child(c byte) *node {
	return n.children[c]
}

// addChild links child under c. The child map is allocated on first use.
func (n *node) addChild(c byte, child *node) {
	if n.children == nil {
		n.children = make(map[byte]*node)
	}
	n.children[c] = child
}

// removeChild unlinks the child reached over c, if any.
func (n *node) removeChild(c byte) {
	delete(n.children, c)
}

// hasValue reports whether a key ends at this node.
func (n *node) hasValue() bool {
	return n.values != nil
}

// isLeaf reports whether the node has no children.
func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// childKeys returns the outgoing edge bytes in ascending order. Map
// iteration order is random, so enumerations sort the edges first.
func (n *node) childKeys() []byte {
	if len(n.children) == 0 {
		return nil
	}
	keys := make([]byte, 0, len(n.children))
	for c := range n.children {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
