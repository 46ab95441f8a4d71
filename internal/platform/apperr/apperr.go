// Copyright (c) 2026 Bookhaven. All rights reserved.
// Author: dev@bookhaven.app

/*
Package apperr defines the centralized error handling framework for Bookhaven.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - Code: a closed enumeration of every application error kind.
  - AppError: A struct carrying a Code and a client-safe message.
  - Mapping: Code.HTTPStatus is the single, exhaustive Code-to-status switch.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses. Adding a new Code means extending exactly one switch.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable identifier for an application error kind.
//
// The set of codes is closed: every code the service can produce is declared
// below, and [Code.HTTPStatus] covers all of them in one switch.
type Code string

const (
	// CodeBookNotFound — a direct lookup by id matched nothing.
	CodeBookNotFound Code = "BOOK_NOT_FOUND"
	// CodeZeroBooksFound — a bulk fetch ran against an empty catalog.
	CodeZeroBooksFound Code = "ZERO_BOOKS_FOUND"
	// CodeRequestMissing — the creation payload itself was absent.
	CodeRequestMissing Code = "BOOK_REQUEST_MISSING"
	// CodeInvalidRequest — the creation payload carried invalid fields.
	CodeInvalidRequest Code = "INVALID_BOOK_REQUEST"
	// CodeInvalidRating — a rating was absent or outside [1,5].
	CodeInvalidRating Code = "INVALID_BOOK_RATING"
	// CodeListUnavailable — a nil book list reached the response mapper.
	CodeListUnavailable Code = "BOOK_LIST_UNAVAILABLE"
	// CodeInvalidFilter — a string filter value was absent or blank.
	CodeInvalidFilter Code = "INVALID_FILTER_VALUE"
	// CodeInvalidPriceRange — price bounds were absent, inverted, or non-positive.
	CodeInvalidPriceRange Code = "INVALID_PRICE_RANGE"
	// CodeInvalidYear — a year was absent or in the future.
	CodeInvalidYear Code = "INVALID_BOOK_YEAR"
	// CodeInternal — an unexpected server-side failure.
	CodeInternal Code = "INTERNAL_ERROR"
)

// HTTPStatus maps an error code to its HTTP response status.
//
// The switch is exhaustive over the declared codes; an unknown code falls
// through to 500 so a missed case can never leak a zero status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeBookNotFound, CodeZeroBooksFound:
		return http.StatusNotFound
	case CodeRequestMissing, CodeInvalidRequest, CodeInvalidFilter, CodeInvalidPriceRange, CodeInvalidYear:
		return http.StatusBadRequest
	case CodeInvalidRating, CodeListUnavailable:
		return http.StatusConflict
	case CodeInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// AppError is the canonical error type for the Bookhaven API.
//
// It carries a machine-readable code, a client-safe message, and an optional
// slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code identifies the error kind and determines the HTTP status.
	Code Code `json:"errorCode"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for INVALID_BOOK_REQUEST responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Constructors

// BookNotFound creates the error for a missed direct lookup by id.
func BookNotFound(id string) *AppError {
	return &AppError{
		Code:    CodeBookNotFound,
		Message: fmt.Sprintf("Book where id = %s not found", id),
	}
}

// ZeroBooksFound creates the error for a bulk fetch over an empty catalog.
func ZeroBooksFound() *AppError {
	return &AppError{
		Code:    CodeZeroBooksFound,
		Message: "No books were found",
	}
}

// RequestMissing creates the error for an absent creation payload.
func RequestMissing() *AppError {
	return &AppError{
		Code:    CodeRequestMissing,
		Message: "Book request is missing",
	}
}

// InvalidRequest creates the error for a creation payload with invalid
// fields, carrying the aggregated per-field failures.
func InvalidRequest(details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeInvalidRequest,
		Message: "Book request validation failed",
		Details: details,
	}
}

// InvalidRating creates the error for a rating that is absent or outside [1,5].
func InvalidRating(msg string) *AppError {
	return &AppError{
		Code:    CodeInvalidRating,
		Message: msg,
	}
}

// ListUnavailable creates the error for a nil book list reaching the mapper.
func ListUnavailable() *AppError {
	return &AppError{
		Code:    CodeListUnavailable,
		Message: "Book list is unavailable",
	}
}

// InvalidFilter creates the error for an absent or blank string filter.
func InvalidFilter(msg string) *AppError {
	return &AppError{
		Code:    CodeInvalidFilter,
		Message: msg,
	}
}

// InvalidPriceRange creates the error for absent, inverted, or non-positive bounds.
func InvalidPriceRange(msg string) *AppError {
	return &AppError{
		Code:    CodeInvalidPriceRange,
		Message: msg,
	}
}

// InvalidYear creates the error for an absent or future year.
func InvalidYear(msg string) *AppError {
	return &AppError{
		Code:    CodeInvalidYear,
		Message: msg,
	}
}

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "An unexpected error occurred",
		Cause:   cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err is an [*AppError] with the given code.
func HasCode(err error, code Code) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
