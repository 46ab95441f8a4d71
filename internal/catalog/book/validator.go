package book

import (
	"fmt"
	"strings"
	"time"

	"github.com/bookhaven/bookhaven/internal/platform/apperr"
	"github.com/bookhaven/bookhaven/internal/platform/validate"
)

// Validator holds the precondition checks guarding the catalog service.
//
// Every method is stateless: it inspects its input and returns nil or a
// typed [apperr.AppError]. Rating, filter, and year arguments arrive as
// pointers where the transport can genuinely omit them.
type Validator struct{}

// ValidateRequest ensures the creation payload is present and that all of
// its fields satisfy the declarative rules. Field violations are aggregated
// so a rejected payload reports every failure at once.
func (Validator) ValidateRequest(r *Request) error {
	if r == nil {
		return apperr.RequestMissing()
	}

	v := &validate.Validator{}
	v.Required("title", r.Title, "Book title can not be blank")
	v.Required("description", r.Description, "Book description can not be blank")
	v.Required("author", r.Author, "Book author can not be blank")
	v.OneOf("genre", string(r.Genre), GenreNames()...)

	if r.Year == nil {
		v.Custom("year", true, "Book year is required")
	} else {
		v.Custom("year", *r.Year > time.Now().Year(), "Book year can not be in the future")
	}

	v.Positive("price", r.Price, "Book price must be greater than 0")

	return v.Err()
}

// ValidateRating ensures a rating is present and within the valid scale.
func (Validator) ValidateRating(rating *int) error {
	if rating == nil {
		return apperr.InvalidRating("Rating is missing")
	}
	if *rating < MinRating || *rating > MaxRating {
		return apperr.InvalidRating(fmt.Sprintf("Book rating must be between %d and %d", MinRating, MaxRating))
	}
	return nil
}

// ValidateBookList ensures a fetched collection is present.
// An empty list is not an error here; only a nil one is.
func (Validator) ValidateBookList(books []*Book) error {
	if books == nil {
		return apperr.ListUnavailable()
	}
	return nil
}

// ValidateStringFilter ensures a string filter value is non-blank.
func (Validator) ValidateStringFilter(filter string) error {
	if strings.TrimSpace(filter) == "" {
		return apperr.InvalidFilter("Given filter is empty")
	}
	return nil
}

// ValidatePriceRange ensures both price bounds are present, ordered, and positive.
func (Validator) ValidatePriceRange(minPrice, maxPrice *float64) error {
	if minPrice == nil || maxPrice == nil {
		return apperr.InvalidPriceRange("Minimum price or maximum price is missing")
	}
	if *minPrice > *maxPrice {
		return apperr.InvalidPriceRange("Minimum price cannot be greater than maximum price")
	}
	if *minPrice <= 0 {
		return apperr.InvalidPriceRange("Prices must be greater than 0")
	}
	return nil
}

// ValidateYear ensures a year filter is present and not in the future.
func (Validator) ValidateYear(year *int) error {
	if year == nil {
		return apperr.InvalidYear("Given year is missing")
	}
	if *year > time.Now().Year() {
		return apperr.InvalidYear("Book year can not be in the future")
	}
	return nil
}
