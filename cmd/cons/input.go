package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v2"
)

const (
	compressionAuto = "auto"
	compressionNone = "none"
	compressionGzip = "gzip"
	compressionZstd = "zstd"
)

type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) Close() error {
	var err error
	for _, fn := range rc.closers {
		if cerr := fn(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func inputName(c *cli.Context) string {
	name := c.Args().First()
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

// openInput opens the file named by the first argument, or stdin, and
// decompresses it according to the compression flag.
func openInput(c *cli.Context) (io.ReadCloser, error) {
	name := c.Args().First()

	var r io.Reader = c.App.Reader
	closers := []func() error{}

	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		r = f
		closers = append(closers, f.Close)
	}

	dr, closeFn, err := decompress(r, c.String("compression"), name)
	if err != nil {
		for _, fn := range closers {
			_ = fn()
		}
		return nil, err
	}
	if closeFn != nil {
		closers = append([]func() error{closeFn}, closers...)
	}

	return &readCloser{Reader: dr, closers: closers}, nil
}

func decompress(r io.Reader, kind string, name string) (io.Reader, func() error, error) {
	if kind == compressionAuto {
		switch filepath.Ext(name) {
		case ".gz":
			kind = compressionGzip
		case ".zst":
			kind = compressionZstd
		default:
			kind = compressionNone
		}
	}

	switch kind {
	case compressionNone:
		return r, nil, nil

	case compressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, zr.Close, nil

	case compressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		return zr, func() error {
			zr.Close()
			return nil
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown compression %q", kind)
}
