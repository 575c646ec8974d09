package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/domains/genre"
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/pkg/cache"
)

type genreService struct {
	repo  genre.Repository
	cache cache.Cache
}

// NewGenreService builds the genre service. The cache is needed because
// the cascade delete touches books, whose reads are cached.
func NewGenreService(repo genre.Repository, c cache.Cache) genre.Service {
	return &genreService{repo: repo, cache: c}
}

func (s *genreService) List(ctx context.Context, params shared.PaginationParams) (*genre.ListResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params.Normalize()

	items, count, err := s.repo.FindAll(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	return &genre.ListResponse{Count: count, Items: items}, nil
}

func (s *genreService) Create(ctx context.Context, req *genre.GenreRequest, createdBy uuid.UUID) (*genre.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check genre name: %w", err)
	}
	if taken {
		return nil, genre.ErrGenreNameTaken
	}

	newGenre := &genre.Genre{Name: req.Name}
	if createdBy != uuid.Nil {
		newGenre.CreatedBy = &createdBy
	}

	return s.repo.Create(ctx, newGenre)
}

func (s *genreService) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, req *genre.GenreRequest) (*genre.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name

	return s.repo.Update(ctx, existing)
}

func (s *genreService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDeleteCascade(ctx, id); err != nil {
		return err
	}

	// The cascade soft-deleted books, so cached book reads are stale.
	// Best-effort like every invalidation: the entries expire anyway.
	if err := s.cache.DeletePattern(ctx, "books-list:*"); err != nil {
		log.Error().Err(err).Msg("Failed to invalidate book list cache after genre delete")
	}
	if err := s.cache.DeletePattern(ctx, "book:*"); err != nil {
		log.Error().Err(err).Msg("Failed to invalidate book cache after genre delete")
	}

	return nil
}
