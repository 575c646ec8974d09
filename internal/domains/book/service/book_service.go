package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/domains/book"
	"bookstore-catalog/internal/domains/genre"
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/pkg/cache"
)

const (
	bookCacheKeyPrefix = "book:"
	listCacheKeyPrefix = "books-list:"
	cacheTTL           = 15 * time.Minute
)

func bookCacheKey(id uuid.UUID) string {
	return bookCacheKeyPrefix + id.String()
}

func listCacheKey(offset, limit int) string {
	return fmt.Sprintf("%s%d:%d", listCacheKeyPrefix, offset, limit)
}

type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
	genreRepo  genre.Repository
	cache      cache.Cache
	enqueuer   shared.TaskEnqueuer
}

func NewBookService(
	repo book.Repository,
	authorRepo author.Repository,
	genreRepo genre.Repository,
	c cache.Cache,
	enqueuer shared.TaskEnqueuer,
) book.Service {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
		genreRepo:  genreRepo,
		cache:      c,
		enqueuer:   enqueuer,
	}
}

func (s *bookService) List(ctx context.Context, params shared.PaginationParams) (*book.ListResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params.Normalize()

	key := listCacheKey(params.Offset, params.Limit)

	var cached book.ListResponse
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	items, count, err := s.repo.FindAll(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	result := &book.ListResponse{Count: count, Items: items}

	if err := s.cache.Set(ctx, key, result, cacheTTL); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to cache book list")
	}

	return result, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Detail, error) {
	key := bookCacheKey(id)

	var cached book.Detail
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	detail, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		// Absence and store failure look the same to the caller; the
		// miss is never cached, so the next call hits the store again.
		return nil, book.ErrBookNotFound
	}

	if err := s.cache.Set(ctx, key, detail, cacheTTL); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to cache book")
	}

	return detail, nil
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest, createdBy uuid.UUID) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Resolve both references against live rows before touching the
	// books table. The check and the insert are deliberately not
	// wrapped in a transaction; a concurrent delete can slip between
	// them (accepted, documented behavior).
	if err := s.validateReferences(ctx, req.AuthorID, req.GenreID); err != nil {
		return nil, err
	}

	newBook := &book.Book{
		Title:           req.Title,
		Description:     req.Description,
		PublicationDate: req.PublicationDate,
		AuthorID:        req.AuthorID,
		GenreID:         req.GenreID,
	}
	if createdBy != uuid.Nil {
		newBook.CreatedBy = &createdBy
	}

	created, err := s.repo.Create(ctx, newBook)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.enqueueNewBookNotification(created.Title, createdBy)

	return created, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The merge base comes straight from the store, never from the
	// cache, so a stale entry cannot leak into the written row.
	existing, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		return nil, book.ErrBookNotFound
	}

	// References are only re-validated when the caller supplies them.
	if req.AuthorID != nil || req.GenreID != nil {
		authorID := existing.AuthorID
		if req.AuthorID != nil {
			authorID = *req.AuthorID
		}
		genreID := existing.GenreID
		if req.GenreID != nil {
			genreID = *req.GenreID
		}
		if err := s.validateReferences(ctx, authorID, genreID); err != nil {
			return nil, err
		}
	}

	merged := existing.Book
	req.ApplyTo(&merged)

	updated, err := s.repo.Update(ctx, &merged)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return updated, nil
}

func (s *bookService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *bookService) validateReferences(ctx context.Context, authorID, genreID uuid.UUID) error {
	authorExists, err := s.authorRepo.ExistsByID(ctx, authorID)
	if err != nil {
		return fmt.Errorf("check author reference: %w", err)
	}
	if !authorExists {
		return book.ErrAuthorNotFound
	}

	genreExists, err := s.genreRepo.ExistsByID(ctx, genreID)
	if err != nil {
		return fmt.Errorf("check genre reference: %w", err)
	}
	if !genreExists {
		return book.ErrGenreNotFound
	}

	return nil
}

// invalidateCache drops both the per-id and the list namespaces. Coarse
// on purpose: list pages and individual entries can both go stale on any
// write, and correctness beats precision here.
func (s *bookService) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, listCacheKeyPrefix+"*"); err != nil {
		log.Error().Err(err).Msg("Failed to invalidate book list cache")
	}
	if err := s.cache.DeletePattern(ctx, bookCacheKeyPrefix+"*"); err != nil {
		log.Error().Err(err).Msg("Failed to invalidate book cache")
	}
}

// enqueueNewBookNotification hands the notification to the worker.
// Best-effort: a failed enqueue is logged and the request still
// succeeds. Delivery is at-least-once via asynq's retry.
func (s *bookService) enqueueNewBookNotification(title string, userID uuid.UUID) {
	payload, err := json.Marshal(shared.NewBookPayload{
		BookTitle: title,
		UserID:    userID.String(),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal new book notification payload")
		return
	}

	task := asynq.NewTask(shared.TypeNotifyNewBook, payload)

	_, err = s.enqueuer.Enqueue(task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		log.Error().Err(err).Str("title", title).Msg("Failed to enqueue new book notification")
		return
	}

	log.Info().Str("title", title).Str("user_id", userID.String()).Msg("Enqueued new book notification")
}
