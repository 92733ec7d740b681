package importer

// Table names read by the app's Bible repository.
const (
	TableBooks    = "bible_books"
	TableVerses   = "bible_verses"
	TableComments = "bible_comments"
)

// Tables lists the tables an import replaces, parents first.
var Tables = []string{TableBooks, TableVerses, TableComments}

// Children are dropped before bible_books so the FOREIGN KEY on
// bible_verses never points at a missing table, even with enforcement on.
const dropSchema = `
DROP TABLE IF EXISTS bible_verses;
DROP TABLE IF EXISTS bible_comments;
DROP TABLE IF EXISTS bible_books;
`

const createSchema = `
CREATE TABLE bible_books(
    id INTEGER PRIMARY KEY,
    name TEXT,
    description TEXT,
    ord INTEGER
);

CREATE TABLE bible_verses(
    id INTEGER PRIMARY KEY,
    book_id INTEGER,
    chapter INTEGER,
    verse INTEGER,
    text TEXT,
    FOREIGN KEY(book_id) REFERENCES bible_books(id)
);

CREATE TABLE bible_comments(
    id INTEGER PRIMARY KEY,
    book_id INTEGER,
    chapter INTEGER,
    verse INTEGER,
    comment TEXT
);
`

const (
	insertBook    = `INSERT INTO bible_books (name, description, ord) VALUES (?, ?, ?)`
	insertVerse   = `INSERT INTO bible_verses (book_id, chapter, verse, text) VALUES (?, ?, ?, ?)`
	insertComment = `INSERT INTO bible_comments (book_id, chapter, verse, comment) VALUES (?, ?, ?, ?)`
)
