package book_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven/internal/catalog/book"
	"github.com/bookhaven/bookhaven/internal/platform/apperr"
)

// errorBody mirrors the wire shape of the error envelope.
type errorBody struct {
	Message   string    `json:"message"`
	ErrorCode string    `json:"errorCode"`
	Time      time.Time `json:"time"`
}

func newTestHandler(t *testing.T) (http.Handler, *memoryRepository, *book.Service) {
	t.Helper()
	repo := newMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := book.NewService(repo, nil, logger)
	return book.NewHandler(service).Routes(), repo, service
}

func doRequest(t *testing.T, handler http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.False(t, body.Time.IsZero())
	return body
}

/*
TestHandler_AddNewBook covers the creation endpoint: acknowledgment on
success, distinct error kinds for absent, malformed, and invalid payloads.
*/
func TestHandler_AddNewBook(t *testing.T) {
	handler, repo, _ := newTestHandler(t)

	t.Run("created", func(t *testing.T) {
		payload, err := json.Marshal(validRequest())
		require.NoError(t, err)

		recorder := doRequest(t, handler, http.MethodPost, "/", payload)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message": "Book successfully created"}`, recorder.Body.String())
		assert.Len(t, repo.order, 1)
	})

	t.Run("empty_body", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(apperr.CodeRequestMissing), decodeError(t, recorder).ErrorCode)
	})

	t.Run("null_body", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/", []byte("null"))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(apperr.CodeRequestMissing), decodeError(t, recorder).ErrorCode)
	})

	t.Run("malformed_json", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/", []byte("{not json"))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidRequest), decodeError(t, recorder).ErrorCode)
	})

	t.Run("invalid_fields", func(t *testing.T) {
		request := validRequest()
		request.Title = ""
		payload, err := json.Marshal(request)
		require.NoError(t, err)

		recorder := doRequest(t, handler, http.MethodPost, "/", payload)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidRequest), decodeError(t, recorder).ErrorCode)
	})
}

/*
TestHandler_GetByID returns the aggregated book resource directly as the
response body, and a 404 envelope for unknown ids.
*/
func TestHandler_GetByID(t *testing.T) {
	handler, repo, service := newTestHandler(t)
	id := mustAdd(t, service, repo, validRequest())
	require.NoError(t, service.RateBook(context.Background(), id, intPtr(4)))

	t.Run("found", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/"+id, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var response book.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, id, response.ID)
		assert.Equal(t, "Pride and Prejudice", response.Title)
		assert.Equal(t, 4, response.OverallRating)

		// Raw ratings must not leak into the resource representation.
		assert.NotContains(t, recorder.Body.String(), `"ratings"`)
	})

	t.Run("unknown_id", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, string(apperr.CodeBookNotFound), decodeError(t, recorder).ErrorCode)
	})

	t.Run("malformed_id", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/some-garbage", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, string(apperr.CodeBookNotFound), decodeError(t, recorder).ErrorCode)
	})
}

/*
TestHandler_DeleteBookByID acknowledges deletion and 404s on a second attempt.
*/
func TestHandler_DeleteBookByID(t *testing.T) {
	handler, repo, service := newTestHandler(t)
	id := mustAdd(t, service, repo, validRequest())

	recorder := doRequest(t, handler, http.MethodDelete, "/"+id, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message": "Book successfully deleted"}`, recorder.Body.String())

	recorder = doRequest(t, handler, http.MethodDelete, "/"+id, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_GetAllBooks returns the bare list on success and the
ZERO_BOOKS_FOUND envelope for an empty catalog.
*/
func TestHandler_GetAllBooks(t *testing.T) {
	handler, repo, service := newTestHandler(t)

	recorder := doRequest(t, handler, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, string(apperr.CodeZeroBooksFound), decodeError(t, recorder).ErrorCode)

	mustAdd(t, service, repo, validRequest())

	recorder = doRequest(t, handler, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var responses []book.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
	assert.Len(t, responses, 1)
}

/*
TestHandler_Filters exercises the path-parameter filters and their
parse-level rejections.
*/
func TestHandler_Filters(t *testing.T) {
	handler, repo, service := newTestHandler(t)
	mustAdd(t, service, repo, validRequest())

	t.Run("by_author", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/byAuthor/jane%20austen", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var responses []book.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
		assert.Len(t, responses, 1)
	})

	t.Run("by_keyword", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/byKeyword/manners", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var responses []book.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
		assert.Len(t, responses, 1)
	})

	t.Run("by_title_no_match", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/byTitle/Dracula", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
	})

	t.Run("by_year", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/byYear/1813", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("by_year_not_a_number", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/byYear/abc", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidYear), decodeError(t, recorder).ErrorCode)
	})

	t.Run("by_genre", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/byGenre/ROMANCE", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var responses []book.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
		assert.Len(t, responses, 1)
	})

	t.Run("by_genre_unknown", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/byGenre/POETRY", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidFilter), decodeError(t, recorder).ErrorCode)
	})
}

/*
TestHandler_PriceRange parses the query bounds and delegates range errors to
the validator.
*/
func TestHandler_PriceRange(t *testing.T) {
	handler, repo, service := newTestHandler(t)
	mustAdd(t, service, repo, validRequest())

	t.Run("valid_range", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/priceRange?minPrice=5&maxPrice=20", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var responses []book.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
		assert.Len(t, responses, 1)
	})

	t.Run("not_a_number", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/priceRange?minPrice=abc&maxPrice=20", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidPriceRange), decodeError(t, recorder).ErrorCode)
	})

	t.Run("missing_bound", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/priceRange?minPrice=5", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidPriceRange), decodeError(t, recorder).ErrorCode)
	})

	t.Run("inverted_bounds", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/priceRange?minPrice=30&maxPrice=10", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidPriceRange), decodeError(t, recorder).ErrorCode)
	})
}

/*
TestHandler_RateBook accepts a bare integer body and rejects anything else.
*/
func TestHandler_RateBook(t *testing.T) {
	handler, repo, service := newTestHandler(t)
	id := mustAdd(t, service, repo, validRequest())

	t.Run("rated", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/rate/"+id, []byte("5"))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message": "Book successfully rated"}`, recorder.Body.String())
	})

	t.Run("out_of_scale", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/rate/"+id, []byte("9"))
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidRating), decodeError(t, recorder).ErrorCode)
	})

	t.Run("not_an_integer", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/rate/"+id, []byte(`"five"`))
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidRating), decodeError(t, recorder).ErrorCode)
	})

	t.Run("empty_body", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/rate/"+id, nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidRating), decodeError(t, recorder).ErrorCode)
	})

	t.Run("unknown_book", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/rate/"+uuid.NewString(), []byte("3"))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

/*
TestHandler_FilterBooksByRatings matches on the rounded average and rejects
non-numeric or out-of-scale values.
*/
func TestHandler_FilterBooksByRatings(t *testing.T) {
	handler, repo, service := newTestHandler(t)
	id := mustAdd(t, service, repo, validRequest())
	require.NoError(t, service.RateBook(context.Background(), id, intPtr(4)))

	t.Run("match", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/rating/4", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var responses []book.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
		assert.Len(t, responses, 1)
	})

	t.Run("no_match", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/rating/2", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
	})

	t.Run("not_a_number", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/rating/high", nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, string(apperr.CodeInvalidRating), decodeError(t, recorder).ErrorCode)
	})
}
