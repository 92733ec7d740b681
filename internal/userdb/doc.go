/*
Package userdb provisions the per-user SQLite database that holds reading
preferences, highlights and bookmarks.

# Provisioning

Provision creates the parent directory if needed and then the tables:

	res, err := userdb.Provision(ctx, "data/user_info.db")
	if err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - every table uses IF NOT EXISTS and no rows
are ever written, so existing user data is left alone.

# Tables

  - user_preferences: singleton row (id = 1) with theme, text size and
    location sharing
  - bible_highlights: a colored verse span within one chapter
  - bible_bookmarks: a chapter, optionally narrowed to a verse span

# Constraints

The CHECK constraints are part of the contract with the reading app:

	theme           IN ('light', 'dark', 'sepia')
	text_size       IN ('small', 'medium', 'large')
	share_location  IN (0, 1)
	highlight_color IN ('yellow', 'green', 'blue', 'red', 'purple', 'orange')
	highlights      verse_start <= verse_end
	bookmarks       both verse bounds NULL, or both set with verse_start <= verse_end

The Theme, TextSize and HighlightColor types mirror these domains so
callers can validate before writing.
*/
package userdb
