package source

import (
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Compression identifies how a document file is compressed.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionXz   Compression = "xz"
)

// DetectCompression returns the compression implied by a file name.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".xz":
		return CompressionXz
	}
	return CompressionNone
}

// decompressor wraps r in a reader for the given compression. The returned
// closer releases decoder resources and must be called.
func decompressor(r io.Reader, c Compression) (io.Reader, func() error, error) {
	noop := func() error { return nil }

	switch c {
	case CompressionNone:
		return r, noop, nil
	case CompressionGzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzr, gzr.Close, nil
	case CompressionXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzr, noop, nil
	}
	return nil, nil, fmt.Errorf("unsupported compression: %s", c)
}
