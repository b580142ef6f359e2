package types

import (
	"iter"

	json "github.com/goccy/go-json"
)

// Header is an ordered collection of parsed keywords.
//
// Keywords appear in file card order. Duplicate names are permitted and all
// occurrences are retained; Get returns the first. A Header is built during
// a single parse pass and never mutated by the engine afterward.
type Header struct {
	keywords []Keyword
}

// NewHeader returns a new, empty Header.
func NewHeader() *Header {
	return &Header{}
}

// Add appends a keyword, preserving insertion order.
func (h *Header) Add(kw Keyword) {
	h.keywords = append(h.keywords, kw)
}

// Get returns the first keyword with the given name, or nil if the name
// is not present. Lookup is a linear scan; under duplicates the earliest
// card wins.
func (h *Header) Get(name string) *Keyword {
	for i := range h.keywords {
		if h.keywords[i].Name == name {
			return &h.keywords[i]
		}
	}
	return nil
}

// Len returns the number of stored keywords.
func (h *Header) Len() int {
	return len(h.keywords)
}

// All returns an iterator over the keywords in insertion order, yielding
// each keyword's name alongside the record itself.
//
// Example:
//
//	for name, kw := range header.All() {
//		fmt.Printf("%s = %s\n", name, kw.Value)
//	}
func (h *Header) All() iter.Seq2[string, Keyword] {
	return func(yield func(string, Keyword) bool) {
		for _, kw := range h.keywords {
			if !yield(kw.Name, kw) {
				return
			}
		}
	}
}

// Map projects the header into a name-keyed map. Under duplicate names the
// later card overwrites the earlier one, matching dictionary-style
// consumers. The map is built fresh on each call.
func (h *Header) Map() map[string]Keyword {
	m := make(map[string]Keyword, len(h.keywords))
	for _, kw := range h.keywords {
		m[kw.Name] = kw
	}
	return m
}

// MarshalJSON serializes the header as a JSON array of keywords in
// insertion order.
func (h *Header) MarshalJSON() ([]byte, error) {
	if h.keywords == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h.keywords)
}
