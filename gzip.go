package fitsmeta

import (
	"fmt"
	"io"
	"os"
)

// gzipMagic is the two-byte signature that opens every gzip stream.
var gzipMagic = [2]byte{0x1f, 0x8b}

// IsGzipFile reports whether the file at path is gzip-compressed by
// reading its first two bytes and comparing them against the gzip magic
// number.
//
// IsGzipFile opens its own handle; it does not interfere with a
// concurrent or subsequent ReadHeader on the same path. A file that
// cannot be opened or holds fewer than two bytes yields an error, not
// false.
func IsGzipFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var magic [2]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return false, fmt.Errorf("%s: read magic bytes: %w", path, err)
	}

	return magic == gzipMagic, nil
}
