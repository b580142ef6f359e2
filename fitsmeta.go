package fitsmeta

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/fitsmeta/internal/block"
	"github.com/simonhull/fitsmeta/internal/card"
	"github.com/simonhull/fitsmeta/internal/types"
)

// ReadHeader reads the primary FITS header from the file at path and
// returns it as an ordered collection of keywords.
//
// The file may be a plain FITS file or gzip-compressed; compression is
// detected from the file's magic bytes and handled transparently. Only
// the header section is read - the data blocks that follow are never
// touched, so reading the header of a multi-gigabyte file costs a few
// block-sized reads.
//
// Cards whose value text cannot be coerced to a typed value are retained
// with the Invalid marker rather than failing the call; check
// Keyword.IsValid. Cards without an "=" separator (COMMENT, HISTORY,
// blank cards) are skipped entirely.
//
// A stream that ends before the END sentinel yields a
// *TruncatedHeaderError.
//
// Example:
//
//	header, err := fitsmeta.ReadHeader("obs.fits.gz")
//	if err != nil {
//		return err
//	}
//	if kw := header.Get("EXPTIME"); kw != nil {
//		fmt.Println("exposure:", kw.Value)
//	}
func ReadHeader(path string, opts ...Option) (*Header, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	// A sniff failure is not fatal here: the file is treated as
	// uncompressed and the open below surfaces any real I/O problem.
	compressed, err := IsGzipFile(path)
	if err != nil {
		compressed = false
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var src io.Reader = bufio.NewReader(f)
	if compressed {
		zr, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("%s: gzip: %w", path, err)
		}
		defer zr.Close()
		src = zr
	}

	buf, err := block.ReadHeader(src, path, options.maxBlocks)
	if err != nil {
		return nil, err
	}

	header := types.NewHeader()
	for c := range card.Cards(buf) {
		kw, ok := card.Parse(c)
		if !ok {
			continue
		}
		if options.strictValues && !kw.IsValid() {
			return nil, &InvalidValueError{Path: path, Name: kw.Name, Raw: kw.Raw()}
		}
		header.Add(kw)
	}

	return header, nil
}

// ReadHeaderContext reads a header with context support for cancellation.
//
// The context is checked before the read starts. Header reads are a
// handful of block-sized I/O operations, so mid-read cancellation is not
// currently plumbed through.
func ReadHeaderContext(ctx context.Context, path string, opts ...Option) (*Header, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadHeader(path, opts...)
}

// ReadHeaders reads the headers of multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, the first error is returned and no headers are.
//
// Example:
//
//	headers, err := fitsmeta.ReadHeaders(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, h := range headers {
//		fmt.Printf("%s: %d keywords\n", paths[i], h.Len())
//	}
func ReadHeaders(ctx context.Context, paths ...string) ([]*Header, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Header, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			header, err := ReadHeader(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = header
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
