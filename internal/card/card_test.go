package card

import (
	"bytes"
	"testing"

	"github.com/simonhull/fitsmeta/internal/types"
)

// padCard pads card text with spaces to the fixed 80-byte card length.
func padCard(text string) []byte {
	card := make([]byte, Length)
	for i := range card {
		card[i] = ' '
	}
	copy(card, text)
	return card
}

func TestParse_IntegerWithComment(t *testing.T) {
	kw, ok := Parse(padCard("KEY1    = 10 / a comment"))
	if !ok {
		t.Fatal("expected card to match")
	}

	if kw.Name != "KEY1" {
		t.Errorf("expected name KEY1, got %q", kw.Name)
	}
	i, isInt := kw.Value.Int()
	if !isInt || i != 10 {
		t.Errorf("expected Integer(10), got %v (%v)", kw.Value, kw.Value.Kind())
	}
	if kw.Comment != "a comment" {
		t.Errorf("expected comment 'a comment', got %q", kw.Comment)
	}
	if !kw.IsValid() {
		t.Error("expected keyword to be valid")
	}
}

func TestParse_QuotedString(t *testing.T) {
	kw, ok := Parse(padCard("NAME    = 'hello'"))
	if !ok {
		t.Fatal("expected card to match")
	}

	s, isStr := kw.Value.Str()
	if !isStr {
		t.Fatalf("expected String kind, got %v", kw.Value.Kind())
	}
	if s != "hello" {
		t.Errorf("expected 'hello' without quotes or padding, got %q", s)
	}
	if kw.Comment != "" {
		t.Errorf("expected no comment, got %q", kw.Comment)
	}
}

func TestParse_QuotedStringTrailingBlanks(t *testing.T) {
	kw, ok := Parse(padCard("TELESCOP= 'SDSS 2.5m           '"))
	if !ok {
		t.Fatal("expected card to match")
	}

	s, _ := kw.Value.Str()
	if s != "SDSS 2.5m" {
		t.Errorf("expected trailing blanks stripped, got %q", s)
	}
}

func TestParse_QuotedStringKeepsLeadingBlanks(t *testing.T) {
	kw, ok := Parse(padCard("PADDED  = '  x'"))
	if !ok {
		t.Fatal("expected card to match")
	}

	s, _ := kw.Value.Str()
	if s != "  x" {
		t.Errorf("expected leading blanks inside quotes kept, got %q", s)
	}
}

func TestParse_Logicals(t *testing.T) {
	tests := []struct {
		card string
		want bool
	}{
		{"FLAG    = T", true},
		{"FLAG2   = f", false},
		{"FLAG3   = t / lowercase", true},
		{"FLAG4   = F", false},
	}

	for _, tt := range tests {
		kw, ok := Parse(padCard(tt.card))
		if !ok {
			t.Fatalf("%q: expected card to match", tt.card)
		}
		b, isBool := kw.Value.Bool()
		if !isBool || b != tt.want {
			t.Errorf("%q: expected Bool(%v), got %v (%v)", tt.card, tt.want, kw.Value, kw.Value.Kind())
		}
	}
}

func TestParse_QuotedLogicalStaysString(t *testing.T) {
	// The quoted rung of the cascade runs before the logical rungs.
	kw, _ := Parse(padCard("QFLAG   = 'T'"))
	if kw.Value.Kind() != types.KindString {
		t.Errorf("expected quoted T to coerce to String, got %v", kw.Value.Kind())
	}
}

func TestParse_EmptyValueIsNull(t *testing.T) {
	kw, ok := Parse(padCard("EMPTY   ="))
	if !ok {
		t.Fatal("expected card to match")
	}
	if !kw.Value.IsNull() {
		t.Errorf("expected Null, got %v (%v)", kw.Value, kw.Value.Kind())
	}
	if !kw.IsValid() {
		t.Error("empty value is a valid Null, not a coercion failure")
	}
}

func TestParse_NullLiteral(t *testing.T) {
	kw, _ := Parse(padCard("NOVAL   = null"))
	if !kw.Value.IsNull() {
		t.Errorf("expected case-insensitive NULL literal, got %v", kw.Value.Kind())
	}
}

func TestParse_Numbers(t *testing.T) {
	tests := []struct {
		card string
		kind types.Kind
	}{
		{"NAXIS   = 2", types.KindInteger},
		{"BZERO   = -32768", types.KindInteger},
		{"EXPTIME = 130.5", types.KindFloat},
		{"SCALE   = 1.5e3", types.KindFloat},
		{"AIRMASS = .5", types.KindFloat},
	}

	for _, tt := range tests {
		kw, ok := Parse(padCard(tt.card))
		if !ok {
			t.Fatalf("%q: expected card to match", tt.card)
		}
		if kw.Value.Kind() != tt.kind {
			t.Errorf("%q: expected %v, got %v", tt.card, tt.kind, kw.Value.Kind())
		}
	}
}

func TestParse_InvalidValueRetained(t *testing.T) {
	kw, ok := Parse(padCard("BAD     = abc$%"))
	if !ok {
		t.Fatal("invalid values still produce a record")
	}

	if !kw.Value.IsInvalid() {
		t.Errorf("expected Invalid, got %v", kw.Value.Kind())
	}
	if kw.IsValid() {
		t.Error("expected valid flag false")
	}
	if !bytes.Equal(kw.Raw(), []byte("abc$%")) {
		t.Errorf("expected raw bytes retained, got %q", kw.Raw())
	}
	if kw.Name != "BAD" {
		t.Errorf("expected name BAD, got %q", kw.Name)
	}
}

func TestParse_CommentOnlyAfterSlash(t *testing.T) {
	kw, _ := Parse(padCard("RA      = 210.5 / degrees J2000"))
	if kw.Comment != "degrees J2000" {
		t.Errorf("expected trimmed comment, got %q", kw.Comment)
	}

	// A slash with nothing behind it is no comment at all.
	kw, _ = Parse(padCard("DEC     = 5.1 /"))
	if kw.Comment != "" {
		t.Errorf("expected empty comment treated as absent, got %q", kw.Comment)
	}
}

func TestParse_SkippedCards(t *testing.T) {
	cards := []string{
		"COMMENT   FITS (Flexible Image Transport System) format",
		"HISTORY   reduced with pipeline v4",
		"",
		"lower   = 1",
	}

	for _, text := range cards {
		if _, ok := Parse(padCard(text)); ok {
			t.Errorf("%q: expected card without a matching name/= shape to be skipped", text)
		}
	}
}

func TestParse_QuoteStopsAtFirstClosingQuote(t *testing.T) {
	// Doubled quotes are not interpreted as escapes.
	kw, ok := Parse(padCard("OBSERVER= 'O''HARA'"))
	if !ok {
		t.Fatal("expected card to match")
	}
	s, _ := kw.Value.Str()
	if s != "O" {
		t.Errorf("expected quote parsing to stop at first closing quote, got %q", s)
	}
}

func TestParse_ShortTailChunk(t *testing.T) {
	// A trailing chunk cut off by the END match position typically
	// fails extraction and is dropped.
	if _, ok := Parse([]byte("        ")); ok {
		t.Error("expected short blank chunk to be skipped")
	}
}

func TestParse_RawIsIndependentCopy(t *testing.T) {
	card := padCard("KEY     = 42")
	kw, _ := Parse(card)

	for i := range card {
		card[i] = 'x'
	}
	if !bytes.Equal(kw.Raw(), []byte("42")) {
		t.Errorf("raw bytes must not alias the card buffer, got %q", kw.Raw())
	}
}

func TestCards_ChunksOf80(t *testing.T) {
	buf := make([]byte, 2*Length+5)
	var got [][]byte
	for c := range Cards(buf) {
		got = append(got, c)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(got))
	}
	if len(got[0]) != Length || len(got[1]) != Length {
		t.Errorf("expected full chunks of %d bytes", Length)
	}
	if len(got[2]) != 5 {
		t.Errorf("expected short tail chunk of 5 bytes, got %d", len(got[2]))
	}
}

func TestCards_Empty(t *testing.T) {
	for range Cards(nil) {
		t.Fatal("expected no chunks from empty buffer")
	}
}
