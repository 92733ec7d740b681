// Package corpus reads the nested JSON Bible corpus consumed by the importer.
//
// The document is an array of books:
//
//	[
//	  {
//	    "bookName": "Matthew",
//	    "description": "...",
//	    "chapters": {
//	      "1": {
//	        "verses":   {"1:1": {"text": "..."}, "1:2": "..."},
//	        "comments": {"1:1": ["...", "..."]}
//	      }
//	    }
//	  }
//	]
//
// Verse and comment keys are "chapter:verse" composites. Only the verse part
// is used; the chapter always comes from the enclosing chapters key.
package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"

	bderrors "github.com/FocuswithJustin/bibledb/core/errors"
)

// Document is the whole corpus in source order.
type Document []Book

// Book is one entry of the top-level array.
type Book struct {
	Name        string
	Description string
	Chapters    Entries[Chapter]
}

type bookJSON struct {
	Name        *string          `json:"bookName"`
	Description *string          `json:"description"`
	Chapters    Entries[Chapter] `json:"chapters"`
}

// UnmarshalJSON requires bookName and defaults a missing or null
// description to "".
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw bookJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name == nil {
		return fmt.Errorf("missing required field %q", "bookName")
	}
	*b = Book{Name: *raw.Name, Chapters: raw.Chapters}
	if raw.Description != nil {
		b.Description = *raw.Description
	}
	return nil
}

// Chapter holds the verse and comment entries of one chapter.
type Chapter struct {
	Verses   Entries[Content] `json:"verses"`
	Comments Entries[Content] `json:"comments"`
}

// Counts summarises the size of a document or of an import.
type Counts struct {
	Books    int
	Chapters int
	Verses   int
	Comments int
}

// Counts returns how many rows an import of d produces.
func (d Document) Counts() Counts {
	c := Counts{Books: len(d)}
	for _, book := range d {
		c.Chapters += len(book.Chapters)
		for _, ch := range book.Chapters {
			c.Verses += len(ch.Value.Verses)
			c.Comments += len(ch.Value.Comments)
		}
	}
	return c
}

// Parse decodes a JSON document. The top-level value must be an array of
// book objects; errors identify the offending book by position.
func Parse(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, bderrors.NewParse("JSON", "", "document is empty")
	}
	if trimmed[0] != '[' {
		if !json.Valid(trimmed) {
			return nil, syntaxError(trimmed)
		}
		return nil, bderrors.NewParse("JSON", "", "top-level value is not an array of books")
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, syntaxError(trimmed)
	}

	doc := make(Document, 0, len(raws))
	for i, raw := range raws {
		var book Book
		if err := json.Unmarshal(raw, &book); err != nil {
			return nil, &bderrors.ParseError{
				Format:  "JSON",
				Message: fmt.Sprintf("book %d: %v", i+1, err),
				Err:     err,
			}
		}
		doc = append(doc, book)
	}
	return doc, nil
}

func syntaxError(data []byte) error {
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		err = fmt.Errorf("invalid JSON")
	}
	msg := err.Error()
	if se, ok := err.(*json.SyntaxError); ok {
		msg = fmt.Sprintf("%v (offset %d)", se, se.Offset)
	}
	return &bderrors.ParseError{Format: "JSON", Message: msg, Err: err}
}
