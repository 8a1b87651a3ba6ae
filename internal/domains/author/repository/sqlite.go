package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"library-api/internal/domains/author"
	"library-api/internal/shared"
	"library-api/pkg/database"
)

// sqliteRepository implements author.Repository on database/sql with the modernc driver.
type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) author.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) conn(ctx context.Context) database.SQLQuerier {
	return database.SQLSession(ctx, r.db)
}

func (r *sqliteRepository) List(ctx context.Context, page shared.Page) ([]author.Author, error) {
	rows, err := r.conn(ctx).QueryContext(ctx,
		`SELECT id, name, bio FROM authors ORDER BY id LIMIT ? OFFSET ?`,
		page.Limit, page.Skip,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0, page.Limit)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	row := r.conn(ctx).QueryRowContext(ctx, `SELECT id, name, bio FROM authors WHERE id = ?`, id)

	a, err := scanAuthor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return a, nil
}

func (r *sqliteRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	created, err := database.WithSQLTransactionResult(ctx, r.conn(ctx), func(tx *sql.Tx) (*author.Author, error) {
		res, err := tx.ExecContext(ctx, `INSERT INTO authors (name, bio) VALUES (?, ?)`, a.Name, a.Bio)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		return &author.Author{ID: id, Name: a.Name, Bio: a.Bio}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row rowScanner) (*author.Author, error) {
	var (
		a   author.Author
		bio sql.NullString
	)
	if err := row.Scan(&a.ID, &a.Name, &bio); err != nil {
		return nil, err
	}
	if bio.Valid {
		a.Bio = &bio.String
	}
	return &a, nil
}
