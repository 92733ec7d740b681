package corpus

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"unicode/utf8"

	"github.com/zeebo/blake3"

	bderrors "github.com/FocuswithJustin/bibledb/core/errors"
	"github.com/FocuswithJustin/bibledb/internal/archive"
	"github.com/FocuswithJustin/bibledb/internal/validation"
)

// Source is a loaded and parsed corpus file.
type Source struct {
	Path        string
	Size        int64              // Bytes on disk
	Compression validation.FileType // FileTypeXZ, FileTypeGzip, or "" when uncompressed
	BLAKE3      string             // Hex digest of the bytes on disk
	Document    Document
}

var utf8BOM = []byte("\xef\xbb\xbf")

// Load reads the whole file at path and parses it. xz and gzip files are
// decompressed first, detected by their magic bytes rather than extension.
func Load(path string) (*Source, error) {
	if err := validation.ValidateFilePath(path); err != nil {
		return nil, &bderrors.ConfigError{Setting: "source", Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &bderrors.IOError{Operation: "read", Path: path, Class: bderrors.ErrInput, Err: err}
	}

	sum := blake3.Sum256(data)
	src := &Source{
		Path:   path,
		Size:   int64(len(data)),
		BLAKE3: hex.EncodeToString(sum[:]),
	}

	data, src.Compression, err = archive.Decompress(data)
	if err != nil {
		return nil, &bderrors.ParseError{Format: "compressed source", Path: path, Message: err.Error(), Err: err}
	}

	ft := validation.DetectFileType(data)
	switch ft {
	case validation.FileTypeSQLite:
		return nil, bderrors.NewParse("JSON", path, "file is a SQLite database, not a JSON document")
	case validation.FileTypeUnknown:
		return nil, bderrors.NewParse("JSON", path, "file is binary, not a JSON document")
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, bderrors.NewParse("JSON", path, "document is not valid UTF-8")
	}

	doc, err := Parse(data)
	if err != nil {
		var pe *bderrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = path
		}
		return nil, err
	}
	src.Document = doc
	return src, nil
}
