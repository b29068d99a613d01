package headermap

import "sort"

// Origin indicates where a mapping entry originated.
type Origin int

const (
	// OriginDefaultResource - loaded from the bundled default mapping resource.
	OriginDefaultResource Origin = iota
	// OriginExplicitSource - loaded from a user-supplied mapping file.
	OriginExplicitSource
	// OriginProgrammatic - inserted by the translation pipeline at run time.
	OriginProgrammatic
)

// String returns a human-readable origin name.
func (o Origin) String() string {
	switch o {
	case OriginDefaultResource:
		return "default"
	case OriginExplicitSource:
		return "explicit"
	case OriginProgrammatic:
		return "programmatic"
	default:
		return "unknown"
	}
}

// Entry is a single override table row.
type Entry struct {
	// Key is the erased fully-qualified type name.
	Key string
	// Header is the mapped header path, emitted verbatim.
	Header string
	// Origin records where the entry came from.
	Origin Origin
}

// Table maps erased fully-qualified type names to header paths.
// Later writes win. Mutation follows the package lifecycle: single
// goroutine until loading ends, then read-only.
type Table struct {
	entries map[string]Entry
}

// NewTable returns an empty override table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Put inserts or replaces the mapping for key.
func (t *Table) Put(key, header string, origin Origin) {
	t.entries[key] = Entry{Key: key, Header: header, Origin: origin}
}

// Get returns the mapped header path for key.
func (t *Table) Get(key string) (string, bool) {
	e, ok := t.entries[key]

	return e.Header, ok
}

// Origin returns the provenance of the entry for key.
func (t *Table) Origin(key string) (Origin, bool) {
	e, ok := t.entries[key]

	return e.Origin, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns all entries in lexicographic key order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})

	return out
}
