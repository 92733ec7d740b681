// Command bible-userdb creates the per-user SQLite database holding reader
// preferences, highlights and bookmarks. Running it against an existing
// database adds any missing tables and leaves stored rows alone.
//
// Usage:
//
//	bible-userdb [--db user_info.db]
package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/bibledb/internal/userdb"
)

const version = "0.1.0"

// CLI defines the command-line interface for bible-userdb.
type CLI struct {
	DB string `name:"db" short:"d" help:"User database to create" type:"path" default:"user_info.db"`

	Version kong.VersionFlag `help:"Print version information"`
}

// Run provisions the database and prints its tables.
func (c *CLI) Run() error {
	res, err := userdb.Provision(context.Background(), c.DB)
	if err != nil {
		return fmt.Errorf("failed to create user database: %w", err)
	}

	if res.Existed {
		fmt.Printf("Updated %s\n", res.Path)
	} else {
		fmt.Printf("Created %s\n", res.Path)
	}
	if res.CreatedDir {
		fmt.Printf("  Created parent directory\n")
	}
	for _, table := range res.Tables {
		fmt.Printf("  Table: %s\n", table)
	}
	fmt.Printf("User DB created at: %s\n", res.Path)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bible-userdb"),
		kong.Description("Create the user preferences, highlights and bookmarks database"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
