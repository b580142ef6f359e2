package fitsmeta

// Option configures behavior when reading headers.
//
// Options use the functional options pattern.
//
// Example:
//
//	header, err := fitsmeta.ReadHeader("obs.fits",
//	    fitsmeta.WithStrictValues(),
//	)
type Option func(*readOptions)

// readOptions holds configuration for reading headers.
type readOptions struct {
	strictValues bool // Fail on any uncoercible value
	maxBlocks    int  // Maximum header blocks to read (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		strictValues: false,
		maxBlocks:    0, // No limit
	}
}

// WithStrictValues treats any uncoercible card value as a fatal error.
//
// By default, a card whose value text cannot be coerced is retained with
// the Invalid marker and parsing continues. With strict values enabled,
// the first such card fails the read with *InvalidValueError.
//
// Example:
//
//	header, err := fitsmeta.ReadHeader("obs.fits", fitsmeta.WithStrictValues())
//	// err != nil if ANY value fails coercion
func WithStrictValues() Option {
	return func(o *readOptions) {
		o.strictValues = true
	}
}

// WithMaxBlocks caps the number of 2880-byte blocks read while searching
// for the END sentinel.
//
// By default there is no cap: a header is read block by block until END
// appears or the stream ends. Feeding the reader a large non-FITS file
// means scanning all of it before the truncation error surfaces; a cap
// turns that into an early *BlockLimitError. A FITS header of n keywords
// occupies ceil((n+1)/36) blocks.
//
// Example:
//
//	header, err := fitsmeta.ReadHeader("obs.fits", fitsmeta.WithMaxBlocks(64))
func WithMaxBlocks(n int) Option {
	return func(o *readOptions) {
		o.maxBlocks = n
	}
}
