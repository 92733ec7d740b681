package userdb

// Table names are part of the contract with the reading app.
const (
	TablePreferences = "user_preferences"
	TableHighlights  = "bible_highlights"
	TableBookmarks   = "bible_bookmarks"
)

// Tables lists every table Provision creates.
var Tables = []string{TablePreferences, TableHighlights, TableBookmarks}

// Schema returns the DDL executed by Provision.
func Schema() string {
	return schema
}

const schema = `
-- User preferences (singleton row)
CREATE TABLE IF NOT EXISTS user_preferences (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    theme TEXT NOT NULL CHECK (
        theme IN ('light', 'dark', 'sepia')
    ) DEFAULT 'light',
    text_size TEXT NOT NULL CHECK (
        text_size IN ('small', 'medium', 'large')
    ) DEFAULT 'medium',
    share_location INTEGER NOT NULL CHECK (
        share_location IN (0, 1)
    ) DEFAULT 0,
    date_added    TEXT NOT NULL DEFAULT (datetime('now')),
    date_modified TEXT NOT NULL DEFAULT (datetime('now'))
);

-- Highlights over a verse span
CREATE TABLE IF NOT EXISTS bible_highlights (
    id INTEGER PRIMARY KEY,
    series_name TEXT NOT NULL,
    book_id INTEGER NOT NULL,
    chapter INTEGER NOT NULL,
    verse_start INTEGER NOT NULL,
    verse_end   INTEGER NOT NULL,
    highlight_color TEXT NOT NULL CHECK (
        highlight_color IN ('yellow', 'green', 'blue', 'red', 'purple', 'orange')
    ),
    additional_notes TEXT,
    date_added    TEXT NOT NULL DEFAULT (datetime('now')),
    date_modified TEXT NOT NULL DEFAULT (datetime('now')),
    CHECK (verse_start <= verse_end)
);

-- Bookmarks; a NULL span marks the whole chapter
CREATE TABLE IF NOT EXISTS bible_bookmarks (
    id INTEGER PRIMARY KEY,
    series_name TEXT NOT NULL,
    book_id INTEGER NOT NULL,
    chapter INTEGER NOT NULL,
    verse_start INTEGER,
    verse_end   INTEGER,
    note TEXT,
    date_added    TEXT NOT NULL DEFAULT (datetime('now')),
    date_modified TEXT NOT NULL DEFAULT (datetime('now')),
    CHECK (
        (verse_start IS NULL AND verse_end IS NULL)
        OR
        (verse_start IS NOT NULL AND verse_end IS NOT NULL AND verse_start <= verse_end)
    )
);
`
