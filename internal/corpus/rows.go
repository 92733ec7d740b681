package corpus

import (
	bderrors "github.com/FocuswithJustin/bibledb/core/errors"
)

// BookRows is one book flattened into the rows the importer writes.
type BookRows struct {
	Name        string
	Description string
	Ord         int // 1-based position in the document
	Verses      []VerseRow
	Comments    []CommentRow
}

// VerseRow is one bible_verses row without its book_id.
type VerseRow struct {
	Chapter int
	Verse   int
	Text    string
}

// CommentRow is one bible_comments row without its book_id.
type CommentRow struct {
	Chapter int
	Verse   int
	Comment string
}

// Flatten resolves every key and value of d into rows, in document order.
// Any unparseable key fails the whole document so nothing is written for
// a corpus that cannot be imported completely. Leaf values never fail;
// unrecognised shapes resolve to "".
func Flatten(d Document) ([]BookRows, error) {
	books := make([]BookRows, 0, len(d))
	for i, book := range d {
		br := BookRows{
			Name:        book.Name,
			Description: book.Description,
			Ord:         i + 1,
		}

		for _, ch := range book.Chapters {
			chapter, err := ParseChapterKey(ch.Key)
			if err != nil {
				return nil, bderrors.Wrapf(err, "book %q", book.Name)
			}

			for _, v := range ch.Value.Verses {
				verse, err := ParseVerseKey("verse", v.Key)
				if err != nil {
					return nil, bderrors.Wrapf(err, "book %q chapter %d", book.Name, chapter)
				}
				br.Verses = append(br.Verses, VerseRow{
					Chapter: chapter,
					Verse:   verse,
					Text:    v.Value.VerseText(),
				})
			}

			for _, c := range ch.Value.Comments {
				verse, err := ParseVerseKey("comment", c.Key)
				if err != nil {
					return nil, bderrors.Wrapf(err, "book %q chapter %d", book.Name, chapter)
				}
				br.Comments = append(br.Comments, CommentRow{
					Chapter: chapter,
					Verse:   verse,
					Comment: c.Value.CommentText(),
				})
			}
		}

		books = append(books, br)
	}
	return books, nil
}
