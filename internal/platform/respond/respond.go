// Copyright (c) 2026 Bookhaven. All rights reserved.
// Author: dev@bookhaven.app

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Successful responses return the resource (or resource list) body directly;
// acknowledgment-only operations return a fixed {"message": "..."} literal.
// Every error, regardless of origin, is translated into the uniform
// {message, errorCode, time} envelope exactly once, here at the boundary.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bookhaven/bookhaven/internal/platform/apperr"
	"github.com/bookhaven/bookhaven/internal/platform/ctxutil"
)

// MessageEnvelope is the JSON body for acknowledgment-only success responses
// (create, delete, rate).
type MessageEnvelope struct {
	Message string `json:"message"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Message   string              `json:"message"`
	ErrorCode apperr.Code         `json:"errorCode"`
	Time      time.Time           `json:"time"`
	Details   []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload as the body.
func OK(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusOK, payload)
}

// Message writes a 200 OK acknowledgment with a fixed message literal.
func Message(writer http.ResponseWriter, message string) {
	JSON(writer, http.StatusOK, MessageEnvelope{Message: message})
}

// Error converts any Go error into the standardized JSON error envelope.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	status := appError.Code.HTTPStatus()

	// Every application error is logged; 5xx causes carry server-side detail.
	logger := ctxutil.GetLogger(request.Context())
	if status >= 500 {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", string(appError.Code)),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	} else {
		logger.WarnContext(request.Context(), "api_client_error",
			slog.String("code", string(appError.Code)),
			slog.String("message", appError.Message),
		)
	}

	JSON(writer, status, ErrorEnvelope{
		Message:   appError.Message,
		ErrorCode: appError.Code,
		Time:      time.Now().UTC(),
		Details:   appError.Details,
	})
}
