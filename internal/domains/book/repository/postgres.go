package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-catalog/internal/domains/book"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = "id, title, description, publication_date, author_id, genre_id, created_at, updated_at, deleted_at, created_by"

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.PublicationDate,
		&b.AuthorID,
		&b.GenreID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.DeletedAt,
		&b.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, limit, offset int) ([]book.Book, int64, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books
        WHERE deleted_at IS NULL
        ORDER BY created_at DESC, id
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	var total int64
	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE deleted_at IS NULL`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*book.Detail, error) {
	// The joined author/genre rows are not filtered on deleted_at: a book
	// keeps showing its author even if that author was soft-deleted
	// afterwards (author deletion does not cascade).
	query := `
        SELECT
            b.id, b.title, b.description, b.publication_date,
            b.author_id, b.genre_id,
            b.created_at, b.updated_at, b.deleted_at, b.created_by,
            a.id, a.name, a.biography, a.birth_date, a.created_at, a.updated_at, a.deleted_at, a.created_by,
            g.id, g.name, g.created_at, g.updated_at, g.deleted_at, g.created_by
        FROM books b
        JOIN authors a ON a.id = b.author_id
        JOIN genres g ON g.id = b.genre_id
        WHERE b.id = $1 AND b.deleted_at IS NULL
    `

	var d book.Detail
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.Description, &d.PublicationDate,
		&d.AuthorID, &d.GenreID,
		&d.CreatedAt, &d.UpdatedAt, &d.DeletedAt, &d.CreatedBy,
		&d.Author.ID, &d.Author.Name, &d.Author.Biography, &d.Author.BirthDate,
		&d.Author.CreatedAt, &d.Author.UpdatedAt, &d.Author.DeletedAt, &d.Author.CreatedBy,
		&d.Genre.ID, &d.Genre.Name,
		&d.Genre.CreatedAt, &d.Genre.UpdatedAt, &d.Genre.DeletedAt, &d.Genre.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &d, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, description, publication_date, author_id, genre_id, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + bookColumns + `
    `

	created, err := scanBook(r.pool.QueryRow(ctx, query,
		b.Title, b.Description, b.PublicationDate, b.AuthorID, b.GenreID, b.CreatedBy,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, book.ErrBookConflict
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET title = $1, description = $2, publication_date = $3,
            author_id = $4, genre_id = $5, updated_at = NOW()
        WHERE id = $6 AND deleted_at IS NULL
        RETURNING ` + bookColumns + `
    `

	updated, err := scanBook(r.pool.QueryRow(ctx, query,
		b.Title, b.Description, b.PublicationDate, b.AuthorID, b.GenreID, b.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, book.ErrBookConflict
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE books SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
