// Copyright (c) 2026 Bookhaven. All rights reserved.
// Author: dev@bookhaven.app

// Package fold provides Unicode-aware case-insensitive string matching.
//
// # Usage
//
// The catalog filters (author, title, keyword) compare user input against
// stored text without regard to letter case. Simple ASCII lowercasing breaks
// on non-ASCII titles, so this package applies full Unicode case folding.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
)

// A cases.Caser is a stateful transformer, so a fresh one is taken per call
// rather than shared across goroutines.

// String returns the Unicode case-folded form of s.
func String(s string) string {
	return cases.Fold().String(s)
}

// Equal reports whether a and b are equal under Unicode case folding.
func Equal(a, b string) bool {
	return String(a) == String(b)
}

// Contains reports whether substr occurs within s under Unicode case folding.
func Contains(s, substr string) bool {
	return strings.Contains(String(s), String(substr))
}
