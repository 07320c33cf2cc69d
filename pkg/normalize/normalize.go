// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize canonicalizes login names before storage and lookup.
//
// # Usage
//
// Usernames are unique identifiers, so two visually identical spellings must
// map to the same stored value. "Alice", "alice", and a fullwidth "ａｌｉｃｅ"
// all resolve to the same account.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Username converts an arbitrary Unicode login name into its canonical form.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Normalizes to NFKC (folds compatibility variants: ﬁ → fi, ａ → a).
// 3. Lowercases.
func Username(s string) string {
	result := strings.TrimSpace(s)
	result = norm.NFKC.String(result)
	return strings.ToLower(result)
}
