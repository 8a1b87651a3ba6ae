package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared"
	"library-api/pkg/database"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) conn(ctx context.Context) database.SQLQuerier {
	return database.SQLSession(ctx, r.db)
}

func (r *sqliteRepository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	query := `SELECT id, title, summary, publication_date, author_id FROM books`
	args := []any{}

	if filter.AuthorID != nil {
		query += ` WHERE author_id = ?`
		args = append(args, *filter.AuthorID)
	}
	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, filter.Page.Limit, filter.Page.Skip)

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0, filter.Page.Limit)
	for rows.Next() {
		b, err := scanSQLBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return books, nil
}

func (r *sqliteRepository) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	row := r.conn(ctx).QueryRowContext(ctx,
		`SELECT id, title, summary, publication_date, author_id FROM books WHERE id = ?`, id)

	b, err := scanSQLBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return b, nil
}

func (r *sqliteRepository) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	created, err := database.WithSQLTransactionResult(ctx, r.conn(ctx), func(tx *sql.Tx) (*model.Book, error) {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO books (title, summary, publication_date, author_id) VALUES (?, ?, ?, ?)`,
			book.Title,
			book.Summary,
			book.PublicationDate.String(),
			book.AuthorID,
		)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		created := *book
		created.ID = id
		return &created, nil
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %d", model.ErrAuthorNotExist, book.AuthorID)
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLBook(row rowScanner) (*model.Book, error) {
	var (
		b       model.Book
		summary sql.NullString
		pubDate string
	)
	if err := row.Scan(&b.ID, &b.Title, &summary, &pubDate, &b.AuthorID); err != nil {
		return nil, err
	}
	if summary.Valid {
		b.Summary = &summary.String
	}
	d, err := shared.ParseDate(pubDate)
	if err != nil {
		return nil, err
	}
	b.PublicationDate = d
	return &b, nil
}
