package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared"
	"library-api/pkg/database"
)

// foreign_key_violation
const pgForeignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new book repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) db(ctx context.Context) database.PgQuerier {
	return database.PgSession(ctx, r.pool)
}

func (r *postgresRepository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, title, summary, publication_date, author_id
        FROM books
    `)

	args := []interface{}{}
	argPos := 1

	if filter.AuthorID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE author_id = $%d", argPos))
		args = append(args, *filter.AuthorID)
		argPos++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.Page.Limit, filter.Page.Skip)

	rows, err := r.db(ctx).Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0, filter.Page.Limit)
	for rows.Next() {
		b, err := scanBook(rows)
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

func (r *postgresRepository) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `
        SELECT id, title, summary, publication_date, author_id
        FROM books
        WHERE id = $1
    `

	b, err := scanBook(r.db(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, summary, publication_date, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, summary, publication_date, author_id
    `

	created, err := database.WithTransactionResult(ctx, r.db(ctx), func(tx pgx.Tx) (*model.Book, error) {
		return scanBook(tx.QueryRow(ctx, query,
			book.Title,
			book.Summary,
			book.PublicationDate.Time,
			book.AuthorID,
		))
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, fmt.Errorf("%w: %d", model.ErrAuthorNotExist, book.AuthorID)
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var (
		b       model.Book
		pubDate time.Time
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Summary, &pubDate, &b.AuthorID); err != nil {
		return nil, err
	}
	b.PublicationDate = shared.DateOf(pubDate)
	return &b, nil
}
