package database

// postgresSchema mirrors the authors/books entity definitions.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id   BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL,
		bio  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id               BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		title            TEXT NOT NULL,
		summary          TEXT,
		publication_date DATE NOT NULL,
		author_id        BIGINT NOT NULL REFERENCES authors (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
}

// sqliteSchema uses AUTOINCREMENT so ids are never reused after a delete.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		bio  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		title            TEXT NOT NULL,
		summary          TEXT,
		publication_date TEXT NOT NULL,
		author_id        INTEGER NOT NULL REFERENCES authors (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
}
