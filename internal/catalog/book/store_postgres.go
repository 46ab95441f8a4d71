package book

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookhaven/bookhaven/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on a pgx connection pool.
//
// Books live in the books table; ratings live in the book_ratings child
// table, ordered by their insertion sequence and cascade-deleted with the
// owning book.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const bookColumns = `id, title, description, genre, author, year, price`

func (repository *PostgresRepository) GetBook(ctx context.Context, id string) (*Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE id = $1
	`

	b := &Book{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.Genre, &b.Author, &b.Year, &b.Price,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}

	if err := repository.loadRatings(ctx, []*Book{b}); err != nil {
		return nil, err
	}
	return b, nil
}

func (repository *PostgresRepository) CreateBook(ctx context.Context, b *Book) error {
	query := `
		INSERT INTO books (title, description, genre, author, year, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := repository.db.QueryRow(ctx, query,
		b.Title, b.Description, b.Genre, b.Author, b.Year, b.Price,
	).Scan(&b.ID)
	if err != nil {
		return dberr.Wrap(err, "create_book")
	}

	if b.Ratings == nil {
		b.Ratings = []int{}
	}
	return nil
}

func (repository *PostgresRepository) DeleteBook(ctx context.Context, id string) error {
	// book_ratings rows go with the book via ON DELETE CASCADE.
	cmd, err := repository.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNoRows
	}
	return nil
}

func (repository *PostgresRepository) ListBooks(ctx context.Context) ([]*Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		ORDER BY title ASC
	`
	return repository.queryBooks(ctx, query)
}

func (repository *PostgresRepository) ListBooksByGenre(ctx context.Context, genre Genre) ([]*Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE genre = $1
		ORDER BY title ASC
	`
	return repository.queryBooks(ctx, query, genre)
}

func (repository *PostgresRepository) ListBooksByAverageRating(ctx context.Context, rating int) ([]*Book, error) {
	// Unrated books coalesce to the scale's floor, matching the
	// aggregation default for an empty ratings sequence.
	query := `
		SELECT ` + bookColumns + `
		FROM books b
		WHERE COALESCE(
			(SELECT ROUND(AVG(r.rating)) FROM book_ratings r WHERE r.book_id = b.id),
			1
		) = $1
		ORDER BY title ASC
	`
	return repository.queryBooks(ctx, query, rating)
}

func (repository *PostgresRepository) AppendRating(ctx context.Context, id string, rating int) error {
	query := `INSERT INTO book_ratings (book_id, rating) VALUES ($1, $2)`

	if _, err := repository.db.Exec(ctx, query, id, rating); err != nil {
		return dberr.Wrap(err, "append_rating")
	}
	return nil
}

// queryBooks runs a multi-row book query and attaches ratings to each hit.
func (repository *PostgresRepository) queryBooks(ctx context.Context, query string, args ...any) ([]*Book, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := make([]*Book, 0)
	for rows.Next() {
		b := &Book{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Genre, &b.Author, &b.Year, &b.Price); err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}

	if err := repository.loadRatings(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

// loadRatings fetches the ratings sequences for the given books in one
// query, preserving insertion order within each book.
func (repository *PostgresRepository) loadRatings(ctx context.Context, books []*Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]string, len(books))
	byID := make(map[string]*Book, len(books))
	for i, b := range books {
		ids[i] = b.ID
		byID[b.ID] = b
		b.Ratings = []int{}
	}

	query := `
		SELECT book_id, rating
		FROM book_ratings
		WHERE book_id = ANY($1::uuid[])
		ORDER BY id ASC
	`

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return dberr.Wrap(err, "load_ratings")
	}
	defer rows.Close()

	for rows.Next() {
		var bookID string
		var rating int
		if err := rows.Scan(&bookID, &rating); err != nil {
			return dberr.Wrap(err, "scan_rating")
		}
		if b, ok := byID[bookID]; ok {
			b.Ratings = append(b.Ratings, rating)
		}
	}
	return dberr.Wrap(rows.Err(), "load_ratings")
}
