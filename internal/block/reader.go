// Package block reads the fixed-size physical records that make up a FITS
// header section.
//
// FITS files are written in 2880-byte blocks; the header occupies one or
// more whole blocks and is terminated by an END keyword padded with blanks
// to the end of its block. This package streams blocks from a reader until
// it sees that sentinel and returns the accumulated header bytes.
package block

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/simonhull/fitsmeta/internal/types"
)

// Size is the FITS physical record size in bytes. Each block holds 36
// 80-byte cards.
const Size = 2880

// endPattern matches the END sentinel. The match is anchored to the end of
// the scanned block: END must be followed by nothing but whitespace through
// the block's final byte. An END card in the middle of a block followed by
// further non-blank cards does not terminate the header.
var endPattern = regexp.MustCompile(`END\s*$`)

// ReadHeader reads fixed-size blocks from r until one contains the END
// sentinel, returning all header bytes up to (not including) the match.
// The returned length is therefore a whole number of blocks plus the
// offset of END within its block.
//
// path is used only for error context. maxBlocks caps the number of
// blocks read; zero means no limit.
//
// If the stream ends before a full block can be read, ReadHeader returns
// *types.TruncatedHeaderError. Other read failures (including gzip decode
// errors from a decompressing reader) are wrapped with the path and block
// number.
func ReadHeader(r io.Reader, path string, maxBlocks int) ([]byte, error) {
	var header []byte
	buf := make([]byte, Size)

	for n := 0; ; n++ {
		if maxBlocks > 0 && n >= maxBlocks {
			return nil, &types.BlockLimitError{Path: path, MaxBlocks: maxBlocks}
		}

		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, &types.TruncatedHeaderError{Path: path, BlocksRead: n}
			}
			return nil, fmt.Errorf("%s: read block %d: %w", path, n, err)
		}

		if loc := endPattern.FindIndex(buf); loc != nil {
			header = append(header, buf[:loc[0]]...)
			return header, nil
		}

		header = append(header, buf...)
	}
}
