// fitsdump prints the header of one or more FITS files.
//
// Usage:
//
//	fitsdump [-json] [-key NAME] [-max-blocks N] <file.fits>...
//
// Files may be gzip-compressed. By default each keyword is printed as
// "NAME = value / comment"; -json emits the full header as a JSON array
// including raw value text and validity flags.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"

	"github.com/simonhull/fitsmeta"
)

func main() {
	log.SetFlags(0)

	var (
		asJSON    bool
		key       string
		maxBlocks int
	)
	flag.BoolVar(&asJSON, "json", false, "emit the header as JSON")
	flag.StringVar(&key, "key", "", "print only the named keyword")
	flag.IntVar(&maxBlocks, "max-blocks", 0, "give up after N header blocks (0 = no limit)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: fitsdump [-json] [-key NAME] [-max-blocks N] <file.fits>...")
		os.Exit(1)
	}

	var opts []fitsmeta.Option
	if maxBlocks > 0 {
		opts = append(opts, fitsmeta.WithMaxBlocks(maxBlocks))
	}

	failed := false
	for _, path := range flag.Args() {
		if flag.NArg() > 1 {
			fmt.Printf("== %s\n", path)
		}
		if err := dump(path, asJSON, key, opts); err != nil {
			log.Printf("%v", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dump(path string, asJSON bool, key string, opts []fitsmeta.Option) error {
	header, err := fitsmeta.ReadHeader(path, opts...)
	if err != nil {
		return err
	}

	if key != "" {
		kw := header.Get(key)
		if kw == nil {
			return fmt.Errorf("%s: keyword %s not found", path, key)
		}
		return emit(kw, asJSON)
	}

	if asJSON {
		return emit(header, asJSON)
	}

	for _, kw := range header.All() {
		fmt.Println(kw.String())
	}
	return nil
}

func emit(v any, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(v)
	return nil
}
