package book

import "context"

// Repository is the persistence gateway for Book entities.
//
// List operations return an empty, non-nil slice when no rows match; absence
// of a single book surfaces as [dberr.ErrNoRows]. The genre and
// average-rating queries are deliberately separate from the generic bulk
// fetch: they are pushed to storage and carry different empty-result
// semantics at the service layer.
type Repository interface {
	// GetBook fetches one book with its full ratings sequence.
	GetBook(ctx context.Context, id string) (*Book, error)

	// CreateBook persists a new book and assigns its id.
	CreateBook(ctx context.Context, b *Book) error

	// DeleteBook removes a book and its ratings.
	DeleteBook(ctx context.Context, id string) error

	// ListBooks fetches the entire catalog.
	ListBooks(ctx context.Context) ([]*Book, error)

	// ListBooksByGenre fetches books matching the genre exactly.
	ListBooksByGenre(ctx context.Context, genre Genre) ([]*Book, error)

	// ListBooksByAverageRating fetches books whose rounded average rating
	// equals rating. Books without ratings count as rating 1, consistent
	// with the aggregation default.
	ListBooksByAverageRating(ctx context.Context, rating int) ([]*Book, error)

	// AppendRating atomically appends one rating to the book's sequence.
	// The insert itself carries no lost-update window; existence of the
	// book is the caller's concern.
	AppendRating(ctx context.Context, id string, rating int) error
}

// Cache is a volatile read-through store for single-book responses.
//
// It is strictly an availability optimization: a miss or a cache fault must
// never fail the request, so implementations return errors for logging only.
type Cache interface {
	// GetResponse returns the cached response for id, or nil on a miss.
	GetResponse(ctx context.Context, id string) (*Response, error)

	// SetResponse caches the response for its id with a bounded TTL.
	SetResponse(ctx context.Context, response *Response) error

	// Invalidate drops the cached response for id.
	Invalidate(ctx context.Context, id string) error
}
