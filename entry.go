package trie

// Entry - one search result: a stored value together with the key it was
// found under. Both fields may be overwritten freely; an Entry is a copy
// and shares no state with the tree it came from.
type Entry struct {
	Value Value
	Key   string
}

// Collection - ordered list of search results. Entries keep the order they
// were added in and duplicates are kept as-is.
type Collection []Entry

// Add appends a single entry to the collection.
func (c *Collection) Add(entry Entry) {
	*c = append(*c, entry)
}

// Merge appends all entries of other to the collection, keeping their order.
func (c *Collection) Merge(other Collection) {
	*c = append(*c, other...)
}

// Values returns just the stored values, in collection order.
func (c Collection) Values() []Value {
	if len(c) == 0 {
		return nil
	}
	values := make([]Value, len(c))
	for i, entry := range c {
		values[i] = entry.Value
	}
	return values
}

// makeEntry labels value with the key it was found under. A value that is
// an entry already (stored as Entry or *Entry) keeps its own key instead
// of the freshly walked one.
func makeEntry(key string, value Value) Entry {
	switch v := value.(type) {
	case Entry:
		return v
	case *Entry:
		return *v
	default:
		return Entry{Value: value, Key: key}
	}
}
