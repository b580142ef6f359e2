// Package fitsmeta provides fast FITS header extraction.
//
// fitsmeta reads the metadata section of FITS astronomical data files
// without touching the data payload. It is built for scientific software
// that needs quick, selective access to observation metadata - instrument
// settings, coordinates, exposure parameters - across many files.
//
// # Quick Start
//
// Reading a header:
//
//	header, err := fitsmeta.ReadHeader("obs.fits")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if kw := header.Get("OBJECT"); kw != nil {
//		fmt.Printf("object: %s\n", kw.Value)
//	}
//	for name, kw := range header.All() {
//		fmt.Printf("%-8s = %s\n", name, kw.Value)
//	}
//
// Gzip-compressed files are detected from their magic bytes and
// decompressed transparently; "obs.fits.gz" works the same as "obs.fits".
//
// # Data Model
//
// A Header is an ordered sequence of Keywords, in file card order, with
// duplicate names retained. Each Keyword carries a name, a typed Value
// (string, integer, float, logical, null, or invalid), an optional
// comment, and the raw value bytes as they appeared on the card.
//
// # Graceful Degradation
//
// A card whose value text cannot be coerced does not fail the read: the
// keyword is kept with the Invalid value marker and Keyword.IsValid
// reporting false, raw bytes intact. Only file- and stream-level problems
// (missing file, gzip decode failure, header truncated before the END
// sentinel) fail a read, each with a descriptive error.
//
// # Batch Reading
//
// Parse many files concurrently:
//
//	headers, err := fitsmeta.ReadHeaders(ctx, paths...)
//
// Each read is independent - its own file handle, its own Header - so
// concurrent reads need no coordination.
package fitsmeta
