// Copyright (c) 2026 Bookhaven. All rights reserved.
// Author: dev@bookhaven.app

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookhaven/bookhaven/pkg/fold"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"ascii_same_case", "Tolkien", "Tolkien", true},
		{"ascii_mixed_case", "TOLKIEN", "tolkien", true},
		{"unicode_sharp_s", "Straße", "STRASSE", true},
		{"different_strings", "Tolkien", "Rowling", false},
		{"empty_both", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, fold.Equal(tt.a, tt.b))
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name      string
		s, substr string
		contains  bool
	}{
		{"exact", "The Lord of the Rings", "Lord", true},
		{"case_insensitive", "The Lord of the Rings", "lord", true},
		{"absent", "The Lord of the Rings", "Hobbit", false},
		{"empty_substr", "anything", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contains, fold.Contains(tt.s, tt.substr))
		})
	}
}
