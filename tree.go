package trie

// tree - character-indexed prefix tree. It implements Tree.
type tree struct {
	root *node
	size int
}

// newTree returns a trie holding no keys. The root node lives for the
// whole life of the tree and is never removed.
func newTree() *tree {
	return &tree{root: newNode()}
}

// findNode follows key byte by byte from the root and returns the node at
// its end. With create set, missing nodes are allocated along the way;
// otherwise findNode returns nil at the first missing child. Every
// operation resolves paths through here.
func (t *tree) findNode(key string, create bool) *node {
	current := t.root
	for i := 0; i < len(key); i++ {
		next := current.child(key[i])
		if next == nil {
			if !create {
				return nil
			}
			next = newNode()
			current.addChild(key[i], next)
		}
		current = next
	}
	return current
}

// Add stores value under key. Adding to an existing key appends to its
// values rather than overwriting them. The empty key is rejected with
// ErrEmptyKey.
func (t *tree) Add(key string, value Value) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	n := t.findNode(key, true)
	if !n.hasValue() {
		t.size++
	}
	n.values = append(n.values, value)
	return nil
}

// Delete removes the values stored at key and reports whether a node
// existed there, so resolving a path-only node also counts. A node that
// still routes to longer keys is kept as a path; one that does not is
// unlinked together with any chain of ancestors left valueless and
// childless.
func (t *tree) Delete(key string) (deleted bool) {
	n := t.findNode(key, false)
	if n == nil {
		return false
	}
	if n.hasValue() {
		n.values = nil
		t.size--
	}
	if n.isLeaf() {
		t.prune(key)
	}
	return true
}

// prune unlinks the node at key and walks back toward the root one byte at
// a time, dropping every ancestor that is left with no children and no
// values. The root itself stays even when it ends up empty.
func (t *tree) prune(key string) {
	for len(key) > 0 {
		parent := t.findNode(key[:len(key)-1], false)
		parent.removeChild(key[len(key)-1])
		if parent.hasValue() || !parent.isLeaf() {
			return
		}
		key = key[:len(key)-1]
	}
}

// IsNode reports whether key names a node in the tree: a stored key or a
// prefix of one. The empty key names the root and is always a node.
func (t *tree) IsNode(key string) bool {
	return t.findNode(key, false) != nil
}

// IsMember reports whether key has values stored against it.
func (t *tree) IsMember(key string) bool {
	n := t.findNode(key, false)
	return n != nil && n.hasValue()
}

// Search returns every value stored at prefix or below it, each labeled
// with its full key. Values stored at a node are emitted before its
// subtrees; subtrees are visited in ascending order of their leading edge
// byte. A prefix that matches nothing yields an empty collection, and the
// empty prefix returns the whole tree.
func (t *tree) Search(prefix string) Collection {
	n := t.findNode(prefix, false)
	if n == nil {
		return Collection{}
	}
	return t.searchHelper(n, prefix)
}

// searchHelper is a helper function for Search. It collects the entries of
// the subtree rooted at n, whose path from the root spells key.
func (t *tree) searchHelper(n *node, key string) Collection {
	results := Collection{}
	for _, value := range n.values {
		results.Add(makeEntry(key, value))
	}
	for _, c := range n.childKeys() {
		results.Merge(t.searchHelper(n.child(c), key+string([]byte{c})))
	}
	return results
}

// Walk calls fn for every stored key/value pair at prefix or below it, in
// the order Search emits them. fn returns false to stop the walk early.
func (t *tree) Walk(prefix string, fn WalkFunc) {
	n := t.findNode(prefix, false)
	if n == nil {
		return
	}
	t.walkHelper(n, prefix, fn)
}

// walkHelper is a helper function for Walk. It reports whether the walk
// should keep going.
func (t *tree) walkHelper(n *node, key string, fn WalkFunc) bool {
	for _, value := range n.values {
		if !fn(key, value) {
			return false
		}
	}
	for _, c := range n.childKeys() {
		if !t.walkHelper(n.child(c), key+string([]byte{c}), fn) {
			return false
		}
	}
	return true
}

// Keys returns every distinct key stored at prefix or below it, in the
// order Walk visits them.
func (t *tree) Keys(prefix string) []string {
	var keys []string
	t.Walk(prefix, func(key string, _ Value) bool {
		if len(keys) == 0 || keys[len(keys)-1] != key {
			keys = append(keys, key)
		}
		return true
	})
	return keys
}

// Size returns the number of distinct keys that currently hold values.
func (t *tree) Size() int {
	return t.size
}
