package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/shared"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context, params shared.PaginationParams) (*author.ListResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params.Normalize()

	items, count, err := s.repo.FindAll(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	return &author.ListResponse{Count: count, Items: items}, nil
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest, createdBy uuid.UUID) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Uniqueness check before insert; the partial unique index backs
	// this up against races.
	taken, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check author name: %w", err)
	}
	if taken {
		return nil, author.ErrAuthorNameTaken
	}

	newAuthor := &author.Author{
		Name:      req.Name,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
	}
	if createdBy != uuid.Nil {
		newAuthor.CreatedBy = &createdBy
	}

	return s.repo.Create(ctx, newAuthor)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)

	return s.repo.Update(ctx, existing)
}

func (s *authorService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}
