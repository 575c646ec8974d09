package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-catalog/internal/domains/genre"
	"bookstore-catalog/pkg/database"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

const genreColumns = "id, name, created_at, updated_at, deleted_at, created_by"

func scanGenre(row pgx.Row) (*genre.Genre, error) {
	var g genre.Genre
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.CreatedAt,
		&g.UpdatedAt,
		&g.DeletedAt,
		&g.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, limit, offset int) ([]genre.Genre, int64, error) {
	query := `
        SELECT ` + genreColumns + `
        FROM genres
        WHERE deleted_at IS NULL
        ORDER BY created_at DESC, id
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	genres := []genre.Genre{}
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating genres: %w", err)
	}

	var total int64
	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres WHERE deleted_at IS NULL`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count genres: %w", err)
	}

	return genres, total, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	query := `
        SELECT ` + genreColumns + `
        FROM genres
        WHERE id = $1 AND deleted_at IS NULL
    `

	g, err := scanGenre(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}
	return g, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM genres WHERE id = $1 AND deleted_at IS NULL)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check genre existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM genres WHERE name = $1 AND deleted_at IS NULL)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check genre name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `
        INSERT INTO genres (name, created_by)
        VALUES ($1, $2)
        RETURNING ` + genreColumns + `
    `

	created, err := scanGenre(r.pool.QueryRow(ctx, query, g.Name, g.CreatedBy))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, genre.ErrGenreNameTaken
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `
        UPDATE genres
        SET name = $1, updated_at = NOW()
        WHERE id = $2 AND deleted_at IS NULL
        RETURNING ` + genreColumns + `
    `

	updated, err := scanGenre(r.pool.QueryRow(ctx, query, g.Name, g.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, genre.ErrGenreNameTaken
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}
	return updated, nil
}

// SoftDeleteCascade marks the genre and its live books deleted in one
// transaction so a crash cannot leave half a cascade behind.
func (r *postgresRepository) SoftDeleteCascade(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE genres SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id,
		)
		if err != nil {
			return fmt.Errorf("failed to delete genre: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return genre.ErrGenreNotFound
		}

		_, err = tx.Exec(ctx,
			`UPDATE books SET deleted_at = NOW(), updated_at = NOW() WHERE genre_id = $1 AND deleted_at IS NULL`, id,
		)
		if err != nil {
			return fmt.Errorf("failed to cascade delete books: %w", err)
		}

		return nil
	})
}
