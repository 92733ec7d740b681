// Command bible-import loads the JSON Bible corpus into a SQLite database
// for the reading app. Each run replaces the bible_books, bible_verses and
// bible_comments tables with the contents of the source file.
//
// Usage:
//
//	bible-import [--source New_Testament.json] [--db drv_new_testament.db]
//
// The source may be plain JSON or xz/gzip compressed JSON.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/FocuswithJustin/bibledb/core/sqlite"
	"github.com/FocuswithJustin/bibledb/internal/importer"
)

const version = "0.1.0"

// CLI defines the command-line interface for bible-import.
type CLI struct {
	Source string `name:"source" short:"s" help:"Corpus JSON file (plain, .xz or .gz)" type:"path" default:"New_Testament.json"`
	DB     string `name:"db" short:"d" help:"Destination SQLite database" type:"path" default:"drv_new_testament.db"`

	Version kong.VersionFlag `help:"Print version information"`
}

// Run performs the import and prints a summary.
func (c *CLI) Run() error {
	fmt.Printf("Importing %s into %s (%s driver)\n", c.Source, c.DB, sqlite.DriverType())

	report, err := importer.Run(context.Background(), importer.Options{Source: c.Source, DB: c.DB})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Database created and populated successfully.\n")
	fmt.Printf("  Source: %s (%s)\n", report.Source, humanize.Bytes(uint64(report.SourceBytes)))
	fmt.Printf("  BLAKE3: %s\n", report.SourceBLAKE3)
	fmt.Printf("  Books: %s\n", humanize.Comma(int64(report.Books)))
	fmt.Printf("  Verses: %s\n", humanize.Comma(int64(report.Verses)))
	fmt.Printf("  Comments: %s\n", humanize.Comma(int64(report.Comments)))
	fmt.Printf("  Duration: %s\n", report.Duration.Round(time.Millisecond))
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bible-import"),
		kong.Description("Load a JSON Bible corpus into SQLite"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
