// Package card tokenizes FITS header bytes into fixed-width cards and
// extracts keyword records from them.
//
// A card is an 80-byte text record of the form
//
//	NAME    = value / comment
//
// The value is either a single-quoted string or a bare token, and the
// comment is optional. Cards that do not carry an "=" separator (COMMENT
// and HISTORY cards, blank cards) produce no record.
package card

import (
	"bytes"
	"iter"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/simonhull/fitsmeta/internal/types"
)

// Length is the fixed card size in bytes.
const Length = 80

// keywordPattern extracts the name, value, and comment tokens from one
// card. Group 1 is the name, group 2 a quoted value (quotes included),
// group 3 a bare value, group 4 the comment. Compiling is deferred to
// first use and happens exactly once; the compiled pattern is immutable
// and safe for concurrent readers.
var keywordPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`([A-Z0-9_-]{1,8})\s*=\s*(?:('[^']*')|([^/\s]*))\s*(?:/\s*(.*))?`)
})

// Cards returns an iterator over consecutive Length-byte chunks of buf.
// A trailing chunk shorter than Length is still yielded: the header bytes
// are truncated at the END match position, which need not fall on a card
// boundary, and the partial tail simply fails keyword extraction.
func Cards(buf []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for off := 0; off < len(buf); off += Length {
			end := off + Length
			if end > len(buf) {
				end = len(buf)
			}
			if !yield(buf[off:end]) {
				return
			}
		}
	}
}

// Parse extracts a keyword record from one card. ok is false when the
// card does not match the keyword shape; such cards are invisible to the
// engine rather than being reported as errors.
//
// The returned keyword's raw value bytes are an independent copy, valid
// after the card buffer is discarded. A card whose value cannot be
// coerced still yields a record, carrying the Invalid value marker.
func Parse(card []byte) (kw types.Keyword, ok bool) {
	m := keywordPattern().FindSubmatch(card)
	if m == nil {
		return types.Keyword{}, false
	}

	name := strings.TrimSpace(string(m[1]))

	var raw []byte
	quoted := false
	if m[2] != nil {
		// Quoted value: strip the delimiting quotes, keep interior
		// leading blanks, drop trailing blanks. Quote parsing stops at
		// the first closing quote; '' doubling is not interpreted.
		raw = bytes.TrimRight(m[2][1:len(m[2])-1], " \t")
		quoted = true
	} else {
		raw = bytes.TrimRight(m[3], " \t")
	}
	raw = bytes.Clone(raw)

	comment := ""
	if m[4] != nil {
		comment = strings.TrimSpace(string(m[4]))
	}

	value, valid := coerce(raw, quoted)
	return types.NewKeyword(name, value, comment, raw, valid), true
}

// coerce resolves a trimmed raw value token to a typed value by trying an
// ordered cascade of rules. The order matters: "T" must become a logical
// before the numeric parses run, and the empty token becomes NULL only
// after both numeric parses have failed.
func coerce(raw []byte, quoted bool) (types.Value, bool) {
	s := string(raw)

	switch {
	case quoted:
		return types.StringValue(s), true
	case strings.EqualFold(s, "T"):
		return types.BoolValue(true), true
	case strings.EqualFold(s, "F"):
		return types.BoolValue(false), true
	case strings.EqualFold(s, "NULL"):
		return types.NullValue(), true
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return types.IntegerValue(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return types.FloatValue(f), true
	}
	if s == "" {
		return types.NullValue(), true
	}

	return types.InvalidValue(), false
}
