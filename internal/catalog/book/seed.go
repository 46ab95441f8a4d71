package book

import (
	"context"
	"fmt"
	"log/slog"
)

// Seed loads a small starter catalog so a fresh environment has data to
// browse. It is a no-op when the catalog already holds books.
func Seed(ctx context.Context, repo Repository, logger *slog.Logger) error {
	existing, err := repo.ListBooks(ctx)
	if err != nil {
		return fmt.Errorf("seed: list books: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("sample data skipped, catalog not empty", "books", len(existing))
		return nil
	}

	samples := []struct {
		book    Book
		ratings []int
	}{
		{
			book: Book{
				Title:       "Harry Potter and the Chamber of Secrets",
				Description: "The second year at Hogwarts turns dangerous when the Chamber of Secrets is opened.",
				Genre:       GenreFantasy,
				Author:      "J.K. Rowling",
				Year:        2000,
				Price:       21.99,
			},
			ratings: []int{3, 5, 5, 2, 4, 5, 5},
		},
		{
			book: Book{
				Title:       "The Fellowship of the Ring",
				Description: "A hobbit inherits a ring of terrible power and sets out to destroy it.",
				Genre:       GenreFantasy,
				Author:      "J.R.R. Tolkien",
				Year:        1954,
				Price:       25.99,
			},
			ratings: []int{5, 5, 4, 4, 5, 5, 5},
		},
		{
			book: Book{
				Title:       "To Kill a Mockingbird",
				Description: "A lawyer in the Depression-era South defends a man wrongly accused of a crime.",
				Genre:       GenreHistory,
				Author:      "Harper Lee",
				Year:        1960,
				Price:       15.99,
			},
			ratings: []int{5, 5, 4, 5, 5, 5, 4},
		},
		{
			book: Book{
				Title:       "1984",
				Description: "A clerk in a totalitarian state commits the crime of independent thought.",
				Genre:       GenreScienceFiction,
				Author:      "George Orwell",
				Year:        1949,
				Price:       12.99,
			},
			ratings: []int{4, 4, 5, 5, 5, 3, 4},
		},
		{
			book: Book{
				Title:       "Pride and Prejudice",
				Description: "Elizabeth Bennet navigates manners, marriage and Mr. Darcy.",
				Genre:       GenreRomance,
				Author:      "Jane Austen",
				Year:        1813,
				Price:       9.99,
			},
			ratings: []int{5, 4, 4, 4, 5, 5, 5},
		},
		{
			book: Book{
				Title:       "The Great Gatsby",
				Description: "A mysterious millionaire throws lavish parties in pursuit of a lost love.",
				Genre:       GenreMystery,
				Author:      "F. Scott Fitzgerald",
				Year:        1925,
				Price:       14.99,
			},
			ratings: []int{5, 5, 4, 3, 4, 4, 5},
		},
		{
			book: Book{
				Title:       "Moby-Dick",
				Description: "Captain Ahab hunts the white whale that took his leg.",
				Genre:       GenreFiction,
				Author:      "Herman Melville",
				Year:        1851,
				Price:       18.99,
			},
			ratings: []int{4, 3, 5, 4, 2, 5, 4},
		},
	}

	for index := range samples {
		sample := &samples[index]

		if err := repo.CreateBook(ctx, &sample.book); err != nil {
			return fmt.Errorf("seed: create %q: %w", sample.book.Title, err)
		}
		for _, rating := range sample.ratings {
			if err := repo.AppendRating(ctx, sample.book.ID, rating); err != nil {
				return fmt.Errorf("seed: rate %q: %w", sample.book.Title, err)
			}
		}
	}

	logger.Info("sample catalog seeded", "books", len(samples))
	return nil
}
