// Package sqliteexternal provides the optional CGO SQLite driver.
//
// The bibledb tools default to the pure Go modernc.org/sqlite driver. Building
// with the cgo_sqlite tag swaps in github.com/mattn/go-sqlite3 instead:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/...
//
// Both drivers accept the same schema scripts, so bible_books, bible_verses
// and the user database tables are identical whichever one produced them.
// Import core/sqlite rather than this package; it selects the driver.
package sqliteexternal
