package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven/internal/catalog/book"
	"github.com/bookhaven/bookhaven/internal/platform/apperr"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func validRequest() *book.Request {
	return &book.Request{
		Title:       "Pride and Prejudice",
		Description: "Elizabeth Bennet navigates manners and marriage.",
		Genre:       book.GenreRomance,
		Author:      "Jane Austen",
		Year:        intPtr(1813),
		Price:       9.99,
	}
}

/*
TestValidator_ValidateRequest covers the creation payload rules: a missing
payload is its own error kind, field violations aggregate into one
INVALID_BOOK_REQUEST.
*/
func TestValidator_ValidateRequest(t *testing.T) {
	var v book.Validator

	t.Run("nil_payload", func(t *testing.T) {
		err := v.ValidateRequest(nil)
		assert.True(t, apperr.HasCode(err, apperr.CodeRequestMissing))
	})

	t.Run("valid_payload", func(t *testing.T) {
		assert.NoError(t, v.ValidateRequest(validRequest()))
	})

	t.Run("current_year_accepted", func(t *testing.T) {
		request := validRequest()
		request.Year = intPtr(time.Now().Year())
		assert.NoError(t, v.ValidateRequest(request))
	})

	tests := []struct {
		name   string
		mutate func(*book.Request)
		field  string
	}{
		{"blank_title", func(r *book.Request) { r.Title = "   " }, "title"},
		{"blank_description", func(r *book.Request) { r.Description = "" }, "description"},
		{"blank_author", func(r *book.Request) { r.Author = "" }, "author"},
		{"unknown_genre", func(r *book.Request) { r.Genre = "POETRY" }, "genre"},
		{"missing_year", func(r *book.Request) { r.Year = nil }, "year"},
		{"future_year", func(r *book.Request) { r.Year = intPtr(time.Now().Year() + 1) }, "year"},
		{"zero_price", func(r *book.Request) { r.Price = 0 }, "price"},
		{"negative_price", func(r *book.Request) { r.Price = -4.5 }, "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRequest()
			tt.mutate(request)

			err := v.ValidateRequest(request)
			require.True(t, apperr.HasCode(err, apperr.CodeInvalidRequest))

			ae := apperr.As(err)
			require.NotNil(t, ae)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}

	t.Run("aggregates_all_violations", func(t *testing.T) {
		request := validRequest()
		request.Title = ""
		request.Author = ""
		request.Price = 0

		err := v.ValidateRequest(request)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Len(t, ae.Details, 3)
	})
}

/*
TestValidator_ValidateRating checks presence and the [1,5] scale.
*/
func TestValidator_ValidateRating(t *testing.T) {
	var v book.Validator

	tests := []struct {
		name    string
		rating  *int
		wantErr bool
	}{
		{"missing", nil, true},
		{"below_scale", intPtr(0), true},
		{"above_scale", intPtr(6), true},
		{"negative", intPtr(-1), true},
		{"minimum", intPtr(1), false},
		{"maximum", intPtr(5), false},
		{"midpoint", intPtr(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRating(tt.rating)
			if tt.wantErr {
				assert.True(t, apperr.HasCode(err, apperr.CodeInvalidRating))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestValidator_ValidatePriceRange checks presence, ordering, and positivity of
the price bounds.
*/
func TestValidator_ValidatePriceRange(t *testing.T) {
	var v book.Validator

	tests := []struct {
		name     string
		minPrice *float64
		maxPrice *float64
		wantErr  bool
	}{
		{"missing_min", nil, floatPtr(20), true},
		{"missing_max", floatPtr(5), nil, true},
		{"missing_both", nil, nil, true},
		{"inverted_bounds", floatPtr(30), floatPtr(10), true},
		{"zero_min", floatPtr(0), floatPtr(10), true},
		{"negative_min", floatPtr(-1), floatPtr(10), true},
		{"valid_range", floatPtr(5), floatPtr(30), false},
		{"equal_bounds", floatPtr(12.99), floatPtr(12.99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePriceRange(tt.minPrice, tt.maxPrice)
			if tt.wantErr {
				assert.True(t, apperr.HasCode(err, apperr.CodeInvalidPriceRange))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestValidator_ValidateStringFilter rejects blank filter values.
*/
func TestValidator_ValidateStringFilter(t *testing.T) {
	var v book.Validator

	assert.NoError(t, v.ValidateStringFilter("Tolkien"))
	assert.True(t, apperr.HasCode(v.ValidateStringFilter(""), apperr.CodeInvalidFilter))
	assert.True(t, apperr.HasCode(v.ValidateStringFilter("   "), apperr.CodeInvalidFilter))
}

/*
TestValidator_ValidateYear checks presence and the no-future rule for the
year filter.
*/
func TestValidator_ValidateYear(t *testing.T) {
	var v book.Validator

	assert.NoError(t, v.ValidateYear(intPtr(1851)))
	assert.NoError(t, v.ValidateYear(intPtr(time.Now().Year())))
	assert.True(t, apperr.HasCode(v.ValidateYear(nil), apperr.CodeInvalidYear))
	assert.True(t, apperr.HasCode(v.ValidateYear(intPtr(time.Now().Year()+1)), apperr.CodeInvalidYear))
}

/*
TestValidator_ValidateBookList distinguishes a nil collection (unavailable)
from an empty one (valid).
*/
func TestValidator_ValidateBookList(t *testing.T) {
	var v book.Validator

	assert.True(t, apperr.HasCode(v.ValidateBookList(nil), apperr.CodeListUnavailable))
	assert.NoError(t, v.ValidateBookList([]*book.Book{}))
	assert.NoError(t, v.ValidateBookList([]*book.Book{{Title: "1984"}}))
}
