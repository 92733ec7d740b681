// Package archive opens compressed corpus files. xz and gzip streams are
// recognised by their leading bytes rather than by file extension.
package archive

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/bibledb/internal/validation"
)

// headerLength covers the longest compression magic we check for.
const headerLength = 6

// Reader yields the decompressed bytes of a possibly compressed stream.
type Reader struct {
	io.Reader
	// Compression is FileTypeXZ, FileTypeGzip, or "" for a plain stream.
	Compression  validation.FileType
	decompressor io.Closer
}

// NewReader wraps r, decompressing it when it starts with an xz or gzip
// header. Any other stream is passed through unchanged.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(headerLength)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read header: %w", err)
	}

	switch ft := validation.DetectFileType(head); ft {
	case validation.FileTypeXZ:
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		return &Reader{Reader: xzr, Compression: ft}, nil
	case validation.FileTypeGzip:
		gzr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return &Reader{Reader: gzr, Compression: ft, decompressor: gzr}, nil
	default:
		return &Reader{Reader: br}, nil
	}
}

// Close releases the decompressor. The underlying stream is left open.
func (r *Reader) Close() error {
	if r.decompressor != nil {
		return r.decompressor.Close()
	}
	return nil
}

// Decompress returns the decompressed contents of data and the compression
// that was removed.
func Decompress(data []byte) ([]byte, validation.FileType, error) {
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	defer r.Close()

	if r.Compression == "" {
		return data, "", nil
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, r.Compression, fmt.Errorf("%s stream: %w", r.Compression, err)
	}
	return out, r.Compression, nil
}
