// Package book implements the catalog domain: the Book entity, its external
// representations, validation rules, rating aggregation, and the service
// orchestrating them over the persistence gateway.
package book

// Genre classifies a book into one of the fixed catalog categories.
type Genre string

const (
	GenreFiction        Genre = "FICTION"
	GenreNonFiction     Genre = "NON_FICTION"
	GenreMystery        Genre = "MYSTERY"
	GenreFantasy        Genre = "FANTASY"
	GenreBiography      Genre = "BIOGRAPHY"
	GenreScienceFiction Genre = "SCIENCE_FICTION"
	GenreRomance        Genre = "ROMANCE"
	GenreHistory        Genre = "HISTORY"
)

// allGenres is the closed set of valid genres, in declaration order.
var allGenres = []Genre{
	GenreFiction,
	GenreNonFiction,
	GenreMystery,
	GenreFantasy,
	GenreBiography,
	GenreScienceFiction,
	GenreRomance,
	GenreHistory,
}

// Genres returns the closed set of valid genres.
func Genres() []Genre {
	genres := make([]Genre, len(allGenres))
	copy(genres, allGenres)
	return genres
}

// GenreNames returns the valid genre identifiers as plain strings.
func GenreNames() []string {
	names := make([]string, len(allGenres))
	for i, g := range allGenres {
		names[i] = string(g)
	}
	return names
}

// ParseGenre maps a string onto the closed [Genre] enumeration.
// Matching is case-sensitive: genre identifiers are upper-snake constants.
func ParseGenre(s string) (Genre, bool) {
	for _, g := range allGenres {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// Book is the persisted catalog entity.
//
// The id is assigned by the store on creation and immutable afterward.
// Ratings grow by append only; each entry is validated into [1,5] at
// insertion time.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       Genre   `json:"genre"`
	Author      string  `json:"author"`
	Year        int     `json:"year"`
	Price       float64 `json:"price"`
	Ratings     []int   `json:"ratings"`
}

// Request is the inbound creation payload: the Book's scalar fields without
// id and ratings.
//
// Year is a pointer so that an absent field is distinguishable from year
// zero and can be rejected as missing.
type Request struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       Genre   `json:"genre"`
	Author      string  `json:"author"`
	Year        *int    `json:"year"`
	Price       float64 `json:"price"`
}

// Response is the outbound representation: the Book's scalar fields plus the
// derived overall rating, never the raw ratings.
type Response struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Genre         Genre   `json:"genre"`
	Author        string  `json:"author"`
	Year          int     `json:"year"`
	Price         float64 `json:"price"`
	OverallRating int     `json:"overallRating"`
}

// # Mapping

// ToBook converts a validated creation payload into a new entity.
// The id is left unset (assigned by the store) and ratings start empty.
func (r *Request) ToBook() *Book {
	year := 0
	if r.Year != nil {
		year = *r.Year
	}
	return &Book{
		Title:       r.Title,
		Description: r.Description,
		Genre:       r.Genre,
		Author:      r.Author,
		Year:        year,
		Price:       r.Price,
		Ratings:     []int{},
	}
}

// ToResponse converts an entity into its outbound representation.
// OverallRating is left unset; the service fills it in after mapping.
func (b *Book) ToResponse() *Response {
	return &Response{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Genre:       b.Genre,
		Author:      b.Author,
		Year:        b.Year,
		Price:       b.Price,
	}
}

// ToResponses maps a list of entities to responses, preserving order.
// The result is never nil so an empty list marshals as [].
func ToResponses(books []*Book) []*Response {
	responses := make([]*Response, 0, len(books))
	for _, b := range books {
		responses = append(responses, b.ToResponse())
	}
	return responses
}
