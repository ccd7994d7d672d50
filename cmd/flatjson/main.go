// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

// Program flatjson converts a JSON document (one object, or an array of
// objects) into a CSV table on stdout.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/advxolltm/flatjson"
	"github.com/advxolltm/flatjson/internal/filebuf"

	"github.com/klauspost/compress/gzip"
	"github.com/tailscale/hujson"
	"go.uber.org/zap"
)

var (
	relaxed = flag.Bool("relaxed", false, "Accept comments and trailing commas (JWCC) in the input")
	verbose = flag.Bool("v", false, "Log conversion diagnostics to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %[1]s [options] input.json > out.csv

Flatten a JSON document into CSV. The input must be a single object or an
array of objects; each object becomes one row. Inputs ending in .gz are
decompressed transparently.

Options:
`, progName())
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	buf, err := filebuf.Load(path)
	if err != nil {
		return err
	}
	defer buf.Close()

	// The input buffer must outlive the conversion: parsed values alias it.
	data := buf.Data
	if strings.HasSuffix(path, ".gz") {
		if data, err = gunzip(data); err != nil {
			return fmt.Errorf("decompress %q: %w", path, err)
		}
	}
	if *relaxed {
		if data, err = hujson.Standardize(data); err != nil {
			return fmt.Errorf("standardize %q: %w", path, err)
		}
	}

	return flatjson.Convert(data, os.Stdout, &flatjson.Options{Logger: logger})
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func progName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "flatjson"
}
