package trie

import "errors"

// Value type.
type Value = interface{}

// ErrEmptyKey is returned by Add when the given key is empty.
var ErrEmptyKey = errors.New("trie: empty key")

// WalkFunc - callback function that is passed in Walk. It receives one
// stored key/value pair per call and returns false to stop the walk.
type WalkFunc func(key string, value Value) bool

// Tree - character-indexed prefix tree interface. Keys are walked one byte
// at a time, so multi-byte runes span several tree levels.
//
// A Tree is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
type Tree interface {
	Add(key string, value Value) error
	Delete(key string) (deleted bool)
	IsNode(key string) bool
	IsMember(key string) bool
	Search(prefix string) Collection
	Walk(prefix string, fn WalkFunc)
	Keys(prefix string) []string
	Size() int
}

// New - creates a new instance of an empty trie.
func New() Tree {
	return newTree()
}
