package types

import "fmt"

// TruncatedHeaderError is returned when the byte stream ends before a
// block containing the END sentinel has been read. The header section of
// a well-formed file always terminates with END inside a full 2880-byte
// block, so hitting EOF first means the file is cut short or is not a
// FITS file at all.
type TruncatedHeaderError struct {
	Path       string
	BlocksRead int
}

func (e *TruncatedHeaderError) Error() string {
	return fmt.Sprintf("%s: truncated header: stream ended after %d complete blocks without an END keyword",
		e.Path, e.BlocksRead)
}

// InvalidValueError is returned from strict-mode reads when a card's value
// text cannot be coerced to any typed variant.
type InvalidValueError struct {
	Path string
	Name string
	Raw  []byte
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: keyword %s: unrecognized value %q", e.Path, e.Name, e.Raw)
}

// BlockLimitError is returned when a read configured with a block cap
// exhausts the cap without finding the END sentinel.
type BlockLimitError struct {
	Path      string
	MaxBlocks int
}

func (e *BlockLimitError) Error() string {
	return fmt.Sprintf("%s: no END keyword within %d blocks", e.Path, e.MaxBlocks)
}
