package types

import (
	json "github.com/goccy/go-json"
)

// Keyword is one parsed header card.
//
// Name, Value, and Comment are the extracted fields. A Keyword whose card
// value could not be coerced is still stored: its Value is the Invalid
// marker, IsValid reports false, and Raw still returns the original value
// bytes so callers can recover them.
type Keyword struct {
	// Name is the trimmed keyword name, conventionally at most 8
	// characters from [A-Z0-9_-].
	Name string

	// Value is the coerced typed value.
	Value Value

	// Comment is the trimmed comment text, empty when the card carried
	// no comment.
	Comment string

	raw   []byte
	valid bool
}

// NewKeyword builds a Keyword. raw must be independently owned by the
// caller; the Keyword keeps the slice without copying.
func NewKeyword(name string, value Value, comment string, raw []byte, valid bool) Keyword {
	return Keyword{
		Name:    name,
		Value:   value,
		Comment: comment,
		raw:     raw,
		valid:   valid,
	}
}

// Raw returns the value bytes exactly as extracted from the card,
// before coercion. The returned slice must not be modified.
func (k *Keyword) Raw() []byte {
	return k.raw
}

// IsValid reports whether value coercion succeeded for this keyword.
func (k *Keyword) IsValid() bool {
	return k.valid
}

// String renders the keyword as "NAME = value" or
// "NAME = value / comment".
func (k *Keyword) String() string {
	if k.Comment != "" {
		return k.Name + " = " + k.Value.String() + " / " + k.Comment
	}
	return k.Name + " = " + k.Value.String()
}

// MarshalJSON serializes the keyword including its valid flag and the
// raw value text.
func (k Keyword) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string `json:"name"`
		Value   Value  `json:"value"`
		Comment string `json:"comment,omitempty"`
		Raw     string `json:"raw"`
		Valid   bool   `json:"valid"`
	}{
		Name:    k.Name,
		Value:   k.Value,
		Comment: k.Comment,
		Raw:     string(k.raw),
		Valid:   k.valid,
	})
}
