// Copyright (c) 2026 Bookhaven. All rights reserved.
// Author: dev@bookhaven.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bookhaven/bookhaven/internal/platform/apperr"
)

// ErrNoRows is a sentinel returned when a queried row doesn't exist.
// Callers that know which resource was missed translate it into the
// specific [apperr] constructor (e.g. a book id lookup).
var ErrNoRows = errors.New("dberr: no rows")

// Wrap inspects a database error and classifies it.
// It hides internal database details from the client: anything that is not
// a recognized row-absence becomes an internal [apperr.AppError].
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoRows
	}

	// 2. Unknown query errors become Internal Server Errors.
	// The action tag names the failed store operation in server-side logs.
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
