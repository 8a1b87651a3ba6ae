package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/author"
	"library-api/internal/shared"
	"library-api/pkg/database"
)

// postgresRepository implements author.Repository on pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) db(ctx context.Context) database.PgQuerier {
	return database.PgSession(ctx, r.pool)
}

func (r *postgresRepository) List(ctx context.Context, page shared.Page) ([]author.Author, error) {
	query := `
        SELECT id, name, bio
        FROM authors
        ORDER BY id
        LIMIT $1 OFFSET $2
    `

	rows, err := r.db(ctx).Query(ctx, query, page.Limit, page.Skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0, page.Limit)
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `
        SELECT id, name, bio
        FROM authors
        WHERE id = $1
    `

	var a author.Author
	err := r.db(ctx).QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

// Create inserts and commits in a single transaction, returning the assigned id.
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, bio)
        VALUES ($1, $2)
        RETURNING id, name, bio
    `

	created, err := database.WithTransactionResult(ctx, r.db(ctx), func(tx pgx.Tx) (*author.Author, error) {
		var created author.Author
		if err := tx.QueryRow(ctx, query, a.Name, a.Bio).Scan(&created.ID, &created.Name, &created.Bio); err != nil {
			return nil, err
		}
		return &created, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}
