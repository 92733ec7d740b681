package userdb

import "database/sql"

// Theme is the reading theme stored in user_preferences.theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeSepia Theme = "sepia"
)

// Valid reports whether t satisfies the theme CHECK constraint.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSepia:
		return true
	}
	return false
}

// TextSize is the reading text size stored in user_preferences.text_size.
type TextSize string

const (
	TextSizeSmall  TextSize = "small"
	TextSizeMedium TextSize = "medium"
	TextSizeLarge  TextSize = "large"
)

// Valid reports whether s satisfies the text_size CHECK constraint.
func (s TextSize) Valid() bool {
	switch s {
	case TextSizeSmall, TextSizeMedium, TextSizeLarge:
		return true
	}
	return false
}

// HighlightColor is the color of a highlight.
type HighlightColor string

const (
	HighlightYellow HighlightColor = "yellow"
	HighlightGreen  HighlightColor = "green"
	HighlightBlue   HighlightColor = "blue"
	HighlightRed    HighlightColor = "red"
	HighlightPurple HighlightColor = "purple"
	HighlightOrange HighlightColor = "orange"
)

// HighlightColors lists the allowed colors in display order.
var HighlightColors = []HighlightColor{
	HighlightYellow, HighlightGreen, HighlightBlue,
	HighlightRed, HighlightPurple, HighlightOrange,
}

// Valid reports whether c satisfies the highlight_color CHECK constraint.
func (c HighlightColor) Valid() bool {
	for _, allowed := range HighlightColors {
		if c == allowed {
			return true
		}
	}
	return false
}

// Defaults applied by the user_preferences column definitions.
const (
	DefaultTheme    = ThemeLight
	DefaultTextSize = TextSizeMedium
)

// Preferences is the single user_preferences row.
type Preferences struct {
	ID            int64
	Theme         Theme
	TextSize      TextSize
	ShareLocation bool // stored as 0/1
	DateAdded     string
	DateModified  string
}

// Highlight is a bible_highlights row. VerseStart never exceeds VerseEnd.
type Highlight struct {
	ID              int64
	SeriesName      string
	BookID          int64
	Chapter         int
	VerseStart      int
	VerseEnd        int
	Color           HighlightColor
	AdditionalNotes sql.NullString
	DateAdded       string
	DateModified    string
}

// Valid reports whether h would pass the table's CHECK constraints.
func (h Highlight) Valid() bool {
	return h.Color.Valid() && h.VerseStart <= h.VerseEnd
}

// Bookmark is a bible_bookmarks row. A bookmark without a verse span
// points at the whole chapter.
type Bookmark struct {
	ID           int64
	SeriesName   string
	BookID       int64
	Chapter      int
	VerseStart   sql.NullInt64
	VerseEnd     sql.NullInt64
	Note         sql.NullString
	DateAdded    string
	DateModified string
}

// ChapterLevel reports whether the bookmark has no verse span.
func (b Bookmark) ChapterLevel() bool {
	return !b.VerseStart.Valid && !b.VerseEnd.Valid
}

// Valid reports whether b would pass the span CHECK constraint: both
// bounds absent, or both present and ordered.
func (b Bookmark) Valid() bool {
	if b.ChapterLevel() {
		return true
	}
	return b.VerseStart.Valid && b.VerseEnd.Valid && b.VerseStart.Int64 <= b.VerseEnd.Int64
}
