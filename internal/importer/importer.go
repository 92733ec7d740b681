// Package importer loads a JSON corpus into the bible_books, bible_verses
// and bible_comments tables of a SQLite database.
//
// Every run is a full reload. The three tables are dropped, recreated and
// filled inside a single transaction, so readers see either the previous
// import or the new one and a failed run leaves the old rows in place.
// Other tables in the same file are never touched.
package importer

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	bderrors "github.com/FocuswithJustin/bibledb/core/errors"
	"github.com/FocuswithJustin/bibledb/core/sqlite"
	"github.com/FocuswithJustin/bibledb/internal/corpus"
	"github.com/FocuswithJustin/bibledb/internal/fileutil"
	"github.com/FocuswithJustin/bibledb/internal/logging"
	"github.com/FocuswithJustin/bibledb/internal/validation"
)

// Default paths, relative to the working directory.
const (
	DefaultSource = "New_Testament.json"
	DefaultDB     = "drv_new_testament.db"
)

// Options configures one import run.
type Options struct {
	Source string // Corpus file (JSON, optionally xz or gzip compressed)
	DB     string // Destination SQLite database
}

// Counts is the number of rows written per table.
type Counts struct {
	Books    int
	Verses   int
	Comments int
}

// Report summarises a completed run.
type Report struct {
	RunID        string
	Source       string
	DB           string
	SourceBytes  int64
	SourceBLAKE3 string
	Books        int
	Verses       int
	Comments     int
	Duration     time.Duration
}

// Run imports opts.Source into opts.DB. The source is read and fully
// resolved before the database is opened; input errors never modify it.
func Run(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	if opts.DB == "" {
		opts.DB = DefaultDB
	}

	report := &Report{RunID: uuid.NewString(), Source: opts.Source, DB: opts.DB}
	ctx = logging.WithRunID(ctx, report.RunID)
	logging.ImportStarted(ctx, opts.Source, opts.DB)

	if err := runImport(ctx, opts, report); err != nil {
		logging.ImportFailed(ctx, err, "source", opts.Source, "db", opts.DB,
			"duration_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	report.Duration = time.Since(start)
	logging.ImportFinished(ctx, report.Books, report.Verses, report.Comments, report.Duration,
		"source_blake3", report.SourceBLAKE3)
	return report, nil
}

func runImport(ctx context.Context, opts Options, report *Report) error {
	if err := validation.ValidateFilePath(opts.DB); err != nil {
		return &bderrors.ConfigError{Setting: "db", Path: opts.DB, Err: err}
	}

	src, err := corpus.Load(opts.Source)
	if err != nil {
		return err
	}
	report.SourceBytes = src.Size
	report.SourceBLAKE3 = src.BLAKE3

	books, err := corpus.Flatten(src.Document)
	if err != nil {
		return err
	}

	created, err := fileutil.EnsureParentDir(opts.DB)
	if err != nil {
		return &bderrors.ConfigError{Setting: "db", Path: opts.DB, Message: "cannot create parent directory", Err: err}
	}
	if created {
		logging.InfoContext(ctx, "created directory", "path", opts.DB)
	}

	db, err := sqlite.Open(opts.DB)
	if err != nil {
		return bderrors.NewStorage("open database", "", err)
	}
	defer db.Close()

	counts, err := writeRows(ctx, db, books)
	if err != nil {
		return err
	}
	report.Books = counts.Books
	report.Verses = counts.Verses
	report.Comments = counts.Comments
	return nil
}

// Write replaces the corpus tables in db with the contents of doc.
func Write(ctx context.Context, db *sql.DB, doc corpus.Document) (Counts, error) {
	books, err := corpus.Flatten(doc)
	if err != nil {
		return Counts{}, err
	}
	return writeRows(ctx, db, books)
}

func writeRows(ctx context.Context, db *sql.DB, books []corpus.BookRows) (Counts, error) {
	var counts Counts

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return counts, bderrors.NewStorage("begin transaction", "", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, dropSchema); err != nil {
		return counts, bderrors.NewStorage("drop tables", "", err)
	}
	if _, err := tx.ExecContext(ctx, createSchema); err != nil {
		return counts, bderrors.NewStorage("create tables", "", err)
	}

	bookStmt, err := tx.PrepareContext(ctx, insertBook)
	if err != nil {
		return counts, bderrors.NewStorage("prepare insert", TableBooks, err)
	}
	defer bookStmt.Close()

	verseStmt, err := tx.PrepareContext(ctx, insertVerse)
	if err != nil {
		return counts, bderrors.NewStorage("prepare insert", TableVerses, err)
	}
	defer verseStmt.Close()

	commentStmt, err := tx.PrepareContext(ctx, insertComment)
	if err != nil {
		return counts, bderrors.NewStorage("prepare insert", TableComments, err)
	}
	defer commentStmt.Close()

	for _, book := range books {
		if err := ctx.Err(); err != nil {
			return Counts{}, err
		}

		res, err := bookStmt.ExecContext(ctx, book.Name, book.Description, book.Ord)
		if err != nil {
			return Counts{}, bderrors.NewStorage("insert", TableBooks, err)
		}
		bookID, err := res.LastInsertId()
		if err != nil {
			return Counts{}, bderrors.NewStorage("read row id", TableBooks, err)
		}

		for _, v := range book.Verses {
			if _, err := verseStmt.ExecContext(ctx, bookID, v.Chapter, v.Verse, v.Text); err != nil {
				return Counts{}, bderrors.NewStorage("insert", TableVerses, err)
			}
		}
		for _, c := range book.Comments {
			if _, err := commentStmt.ExecContext(ctx, bookID, c.Chapter, c.Verse, c.Comment); err != nil {
				return Counts{}, bderrors.NewStorage("insert", TableComments, err)
			}
		}

		counts.Books++
		counts.Verses += len(book.Verses)
		counts.Comments += len(book.Comments)
		logging.BookImported(ctx, book.Name, bookID, len(book.Verses), len(book.Comments))
	}

	if err := tx.Commit(); err != nil {
		return Counts{}, bderrors.NewStorage("commit", "", err)
	}
	return counts, nil
}
