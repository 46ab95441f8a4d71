package book

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookhaven/bookhaven/internal/platform/apperr"
	"github.com/bookhaven/bookhaven/internal/platform/respond"
	"github.com/bookhaven/bookhaven/internal/platform/validate"
)

// Acknowledgment literals for the write operations.
const (
	msgBookCreated = "Book successfully created"
	msgBookDeleted = "Book successfully deleted"
	msgBookRated   = "Book successfully rated"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes builds the catalog route group.
//
// Static prefixes (byAuthor, byGenre, ...) are registered alongside the
// /{id} wildcard; chi resolves static segments first.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getAllBooks)
	router.Post("/", handler.addNewBook)

	router.Get("/byAuthor/{author}", handler.filterByAuthor)
	router.Get("/byKeyword/{keyword}", handler.searchByKeyword)
	router.Get("/byTitle/{title}", handler.filterByTitle)
	router.Get("/priceRange", handler.filterInPriceRange)
	router.Get("/byYear/{year}", handler.filterByYear)
	router.Get("/byGenre/{genre}", handler.filterByGenre)

	router.Post("/rate/{bookId}", handler.rateBook)
	router.Get("/rating/{rating}", handler.filterBooksByRatings)

	router.Get("/{id}", handler.getByID)
	router.Delete("/{id}", handler.deleteBookByID)

	return router
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	response, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, response)
}

func (handler *Handler) addNewBook(writer http.ResponseWriter, request *http.Request) {
	// Decode into a pointer so that an absent or null payload is
	// distinguishable from a zero-valued one.
	var input *Request
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			respond.Error(writer, request, apperr.RequestMissing())
		} else {
			respond.Error(writer, request, validate.ErrInvalidJSON)
		}
		return
	}

	if err := handler.service.AddNewBook(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, msgBookCreated)
}

func (handler *Handler) deleteBookByID(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	if err := handler.service.DeleteBookByID(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, msgBookDeleted)
}

func (handler *Handler) getAllBooks(writer http.ResponseWriter, request *http.Request) {
	responses, err := handler.service.GetAllBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, responses)
}

func (handler *Handler) filterByAuthor(writer http.ResponseWriter, request *http.Request) {
	author := chi.URLParam(request, "author")

	responses, err := handler.service.FilterByAuthor(request.Context(), author)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, responses)
}

func (handler *Handler) searchByKeyword(writer http.ResponseWriter, request *http.Request) {
	keyword := chi.URLParam(request, "keyword")

	responses, err := handler.service.SearchByKeyword(request.Context(), keyword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, responses)
}

func (handler *Handler) filterByTitle(writer http.ResponseWriter, request *http.Request) {
	title := chi.URLParam(request, "title")

	responses, err := handler.service.FilterByTitle(request.Context(), title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, responses)
}

func (handler *Handler) filterInPriceRange(writer http.ResponseWriter, request *http.Request) {
	minPrice, err := priceParam(request, "minPrice")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	maxPrice, err := priceParam(request, "maxPrice")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	responses, err := handler.service.FilterInPriceRange(request.Context(), minPrice, maxPrice)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, responses)
}

func (handler *Handler) filterByYear(writer http.ResponseWriter, request *http.Request) {
	raw := chi.URLParam(request, "year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		respond.Error(writer, request, apperr.InvalidYear("Given year is not a number"))
		return
	}

	responses, err := handler.service.FilterByYear(request.Context(), &year)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, responses)
}

func (handler *Handler) filterByGenre(writer http.ResponseWriter, request *http.Request) {
	raw := chi.URLParam(request, "genre")
	genre, ok := ParseGenre(raw)
	if !ok {
		respond.Error(writer, request, apperr.InvalidFilter("Unknown genre: "+raw))
		return
	}

	responses, err := handler.service.FilterByGenre(request.Context(), genre)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, responses)
}

func (handler *Handler) rateBook(writer http.ResponseWriter, request *http.Request) {
	bookID := chi.URLParam(request, "bookId")

	// The body is a bare JSON integer. An empty body leaves the pointer
	// nil, which the service rejects as a missing rating.
	var rating *int
	if err := json.NewDecoder(request.Body).Decode(&rating); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(writer, request, apperr.InvalidRating("Rating must be an integer"))
		return
	}

	if err := handler.service.RateBook(request.Context(), bookID, rating); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, msgBookRated)
}

func (handler *Handler) filterBooksByRatings(writer http.ResponseWriter, request *http.Request) {
	raw := chi.URLParam(request, "rating")
	rating, err := strconv.Atoi(raw)
	if err != nil {
		respond.Error(writer, request, apperr.InvalidRating("Rating must be an integer"))
		return
	}

	responses, err := handler.service.FilterBooksByRatings(request.Context(), &rating)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, responses)
}

// priceParam parses an optional decimal query parameter into a pointer;
// absence yields nil so the validator can report it as missing.
func priceParam(request *http.Request, name string) (*float64, error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperr.InvalidPriceRange("Minimum price or maximum price is not a number")
	}
	return &value, nil
}
