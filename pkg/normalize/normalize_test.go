// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/keepsake/pkg/normalize"
)

/*
TestUsername covers the canonical folding pipeline: trim, NFKC, lowercase.
*/
func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already_canonical", "alice", "alice"},
		{"uppercase", "ALICE", "alice"},
		{"mixed_case", "AliCe", "alice"},
		{"surrounding_space", "  alice\t", "alice"},
		{"fullwidth", "ａｌｉｃｅ", "alice"},
		{"ligature", "ﬁona", "fiona"},
		{"non_latin_preserved", "日本語ユーザー", "日本語ユーザー"},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.Username(tt.input))
		})
	}
}

/*
TestUsername_Idempotent verifies that folding an already-folded name is a
no-op, which the login path relies on.
*/
func TestUsername_Idempotent(t *testing.T) {
	inputs := []string{"Alice", "  Bob ", "ｃａｒｏｌ", "dave"}

	for _, input := range inputs {
		once := normalize.Username(input)
		assert.Equal(t, once, normalize.Username(once))
	}
}
