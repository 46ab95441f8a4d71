package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven/internal/catalog/book"
)

/*
TestParseGenre checks the closed genre enumeration against exact,
case-sensitive identifiers.
*/
func TestParseGenre(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  book.Genre
		ok    bool
	}{
		{"fiction", "FICTION", book.GenreFiction, true},
		{"science_fiction", "SCIENCE_FICTION", book.GenreScienceFiction, true},
		{"lowercase_rejected", "fantasy", "", false},
		{"unknown_rejected", "POETRY", "", false},
		{"empty_rejected", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := book.ParseGenre(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestRequest_ToBook verifies that a creation payload maps onto a fresh entity:
scalars carried over, id unset, ratings empty but non-nil.
*/
func TestRequest_ToBook(t *testing.T) {
	year := 1954
	request := &book.Request{
		Title:       "The Fellowship of the Ring",
		Description: "A hobbit inherits a ring of terrible power.",
		Genre:       book.GenreFantasy,
		Author:      "J.R.R. Tolkien",
		Year:        &year,
		Price:       25.99,
	}

	entity := request.ToBook()

	assert.Empty(t, entity.ID)
	assert.Equal(t, request.Title, entity.Title)
	assert.Equal(t, request.Description, entity.Description)
	assert.Equal(t, request.Genre, entity.Genre)
	assert.Equal(t, request.Author, entity.Author)
	assert.Equal(t, year, entity.Year)
	assert.Equal(t, request.Price, entity.Price)
	require.NotNil(t, entity.Ratings)
	assert.Empty(t, entity.Ratings)
}

/*
TestBook_ToResponse verifies the outbound mapping: scalars carried over, raw
ratings never exposed, overall rating left for the service to fill.
*/
func TestBook_ToResponse(t *testing.T) {
	entity := &book.Book{
		ID:          "0c8ff4a1-6f1e-4f6e-9f57-2f9d15ab31c4",
		Title:       "1984",
		Description: "A clerk commits the crime of independent thought.",
		Genre:       book.GenreScienceFiction,
		Author:      "George Orwell",
		Year:        1949,
		Price:       12.99,
		Ratings:     []int{4, 4, 5},
	}

	response := entity.ToResponse()

	assert.Equal(t, entity.ID, response.ID)
	assert.Equal(t, entity.Title, response.Title)
	assert.Equal(t, entity.Description, response.Description)
	assert.Equal(t, entity.Genre, response.Genre)
	assert.Equal(t, entity.Author, response.Author)
	assert.Equal(t, entity.Year, response.Year)
	assert.Equal(t, entity.Price, response.Price)
	assert.Zero(t, response.OverallRating)
}

/*
TestToResponses verifies order preservation and the non-nil empty result.
*/
func TestToResponses(t *testing.T) {
	t.Run("empty_input_yields_empty_slice", func(t *testing.T) {
		responses := book.ToResponses(nil)
		require.NotNil(t, responses)
		assert.Empty(t, responses)
	})

	t.Run("preserves_order", func(t *testing.T) {
		books := []*book.Book{
			{ID: "a", Title: "First"},
			{ID: "b", Title: "Second"},
		}
		responses := book.ToResponses(books)
		require.Len(t, responses, 2)
		assert.Equal(t, "First", responses[0].Title)
		assert.Equal(t, "Second", responses[1].Title)
	})
}
