package book

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhaven/bookhaven/internal/platform/apperr"
	"github.com/bookhaven/bookhaven/internal/platform/dberr"
	"github.com/bookhaven/bookhaven/pkg/fold"
)

// Service orchestrates validation, persistence, in-memory filtering, and
// response assembly for the catalog.
//
// The string filters (author, title, keyword) and the price/year filters run
// as predicates over a guarded bulk fetch; the genre and average-rating
// filters are pushed down to the repository and skip that guard entirely.
type Service struct {
	repo      Repository
	cache     Cache
	validator Validator
	logger    *slog.Logger
}

// NewService constructs the catalog service. cache may be nil, in which case
// single-book reads always hit the repository.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// findBookByID resolves an id to its entity or a typed not-found error.
//
// A malformed id can never name a stored book, so it maps to the same
// not-found outcome instead of leaking a storage-level cast failure.
func (service *Service) findBookByID(ctx context.Context, id string) (*Book, error) {
	if uuid.Validate(id) != nil {
		return nil, apperr.BookNotFound(id)
	}

	b, err := service.repo.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNoRows) {
			return nil, apperr.BookNotFound(id)
		}
		return nil, err
	}
	return b, nil
}

// GetByID returns the aggregated response for one book.
func (service *Service) GetByID(ctx context.Context, id string) (*Response, error) {
	if cached := service.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}

	b, err := service.findBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := b.ToResponse()
	response.OverallRating = OverallRating(b.Ratings)

	service.cacheSet(ctx, response)
	return response, nil
}

// AddNewBook validates and persists a new book.
// The stored entity starts with an empty ratings sequence and a fresh id.
func (service *Service) AddNewBook(ctx context.Context, request *Request) error {
	if err := service.validator.ValidateRequest(request); err != nil {
		return err
	}

	b := request.ToBook()
	if err := service.repo.CreateBook(ctx, b); err != nil {
		return err
	}

	service.logger.Info("book_created",
		slog.String("book_id", b.ID),
		slog.String("title", b.Title),
	)
	return nil
}

// DeleteBookByID removes a book after confirming it exists.
func (service *Service) DeleteBookByID(ctx context.Context, id string) error {
	b, err := service.findBookByID(ctx, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteBook(ctx, b.ID); err != nil {
		if errors.Is(err, dberr.ErrNoRows) {
			return apperr.BookNotFound(id)
		}
		return err
	}

	service.cacheInvalidate(ctx, id)
	service.logger.Info("book_deleted", slog.String("book_id", id))
	return nil
}

// findAllBooks is the guarded bulk fetch behind the listing and the
// in-memory filters: an empty catalog is an error for these paths.
func (service *Service) findAllBooks(ctx context.Context) ([]*Book, error) {
	books, err := service.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, apperr.ZeroBooksFound()
	}
	return books, nil
}

// GetAllBooks returns the aggregated responses for the whole catalog.
func (service *Service) GetAllBooks(ctx context.Context) ([]*Response, error) {
	books, err := service.findAllBooks(ctx)
	if err != nil {
		return nil, err
	}
	return service.mapToResponseAndAggregate(books)
}

// FilterByAuthor returns books whose author matches, ignoring case.
// A post-filter empty result is not an error; only the initial bulk fetch
// over an empty catalog is.
func (service *Service) FilterByAuthor(ctx context.Context, author string) ([]*Response, error) {
	if err := service.validator.ValidateStringFilter(author); err != nil {
		return nil, err
	}

	books, err := service.findAllBooks(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterBooks(books, func(b *Book) bool {
		return fold.Equal(b.Author, author)
	})
	return service.mapToResponseAndAggregate(filtered)
}

// FilterByTitle returns books whose title matches, ignoring case.
func (service *Service) FilterByTitle(ctx context.Context, title string) ([]*Response, error) {
	if err := service.validator.ValidateStringFilter(title); err != nil {
		return nil, err
	}

	books, err := service.findAllBooks(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterBooks(books, func(b *Book) bool {
		return fold.Equal(b.Title, title)
	})
	return service.mapToResponseAndAggregate(filtered)
}

// SearchByKeyword returns books whose title or description contains the
// keyword, ignoring case.
func (service *Service) SearchByKeyword(ctx context.Context, keyword string) ([]*Response, error) {
	if err := service.validator.ValidateStringFilter(keyword); err != nil {
		return nil, err
	}

	books, err := service.findAllBooks(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterBooks(books, func(b *Book) bool {
		return fold.Contains(b.Title, keyword) || fold.Contains(b.Description, keyword)
	})
	return service.mapToResponseAndAggregate(filtered)
}

// FilterInPriceRange returns books priced within [minPrice, maxPrice] inclusive.
func (service *Service) FilterInPriceRange(ctx context.Context, minPrice, maxPrice *float64) ([]*Response, error) {
	if err := service.validator.ValidatePriceRange(minPrice, maxPrice); err != nil {
		return nil, err
	}

	books, err := service.findAllBooks(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterBooks(books, func(b *Book) bool {
		return b.Price >= *minPrice && b.Price <= *maxPrice
	})
	return service.mapToResponseAndAggregate(filtered)
}

// FilterByYear returns books published in exactly the given year.
func (service *Service) FilterByYear(ctx context.Context, year *int) ([]*Response, error) {
	if err := service.validator.ValidateYear(year); err != nil {
		return nil, err
	}

	books, err := service.findAllBooks(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterBooks(books, func(b *Book) bool {
		return b.Year == *year
	})
	return service.mapToResponseAndAggregate(filtered)
}

// FilterByGenre returns books of the given genre via the storage-level
// query. It bypasses the guarded bulk fetch: an empty result is an empty
// list, never ZeroBooksFound.
func (service *Service) FilterByGenre(ctx context.Context, genre Genre) ([]*Response, error) {
	books, err := service.repo.ListBooksByGenre(ctx, genre)
	if err != nil {
		return nil, err
	}
	return service.mapToResponseAndAggregate(books)
}

// RateBook appends one rating to a book's sequence.
func (service *Service) RateBook(ctx context.Context, id string, rating *int) error {
	if err := service.validator.ValidateRating(rating); err != nil {
		return err
	}

	b, err := service.findBookByID(ctx, id)
	if err != nil {
		return err
	}

	if err := service.repo.AppendRating(ctx, b.ID, *rating); err != nil {
		return err
	}

	service.cacheInvalidate(ctx, id)
	service.logger.Info("book_rated",
		slog.String("book_id", id),
		slog.Int("rating", *rating),
	)
	return nil
}

// FilterBooksByRatings returns books whose rounded average rating equals the
// given value, via the storage-level query. Like FilterByGenre it bypasses
// the guarded bulk fetch.
func (service *Service) FilterBooksByRatings(ctx context.Context, rating *int) ([]*Response, error) {
	if err := service.validator.ValidateRating(rating); err != nil {
		return nil, err
	}

	books, err := service.repo.ListBooksByAverageRating(ctx, *rating)
	if err != nil {
		return nil, err
	}
	return service.mapToResponseAndAggregate(books)
}

// mapToResponseAndAggregate is the common post-processing step: it rejects a
// nil list, maps each entity, and sets every overall rating from the
// entity's own ratings sequence.
func (service *Service) mapToResponseAndAggregate(books []*Book) ([]*Response, error) {
	if err := service.validator.ValidateBookList(books); err != nil {
		return nil, err
	}

	responses := ToResponses(books)
	for i, response := range responses {
		response.OverallRating = OverallRating(books[i].Ratings)
	}
	return responses, nil
}

// filterBooks applies an in-memory predicate, always yielding a non-nil slice.
func filterBooks(books []*Book, keep func(*Book) bool) []*Book {
	filtered := make([]*Book, 0, len(books))
	for _, b := range books {
		if keep(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// # Cache plumbing
//
// The cache is best-effort: faults are logged and the request proceeds
// against the repository.

func (service *Service) cacheGet(ctx context.Context, id string) *Response {
	if service.cache == nil {
		return nil
	}

	response, err := service.cache.GetResponse(ctx, id)
	if err != nil {
		service.logger.Warn("book_cache_read_failed", slog.String("book_id", id), slog.Any("error", err))
		return nil
	}
	return response
}

func (service *Service) cacheSet(ctx context.Context, response *Response) {
	if service.cache == nil {
		return
	}
	if err := service.cache.SetResponse(ctx, response); err != nil {
		service.logger.Warn("book_cache_write_failed", slog.String("book_id", response.ID), slog.Any("error", err))
	}
}

func (service *Service) cacheInvalidate(ctx context.Context, id string) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Invalidate(ctx, id); err != nil {
		service.logger.Warn("book_cache_invalidate_failed", slog.String("book_id", id), slog.Any("error", err))
	}
}
