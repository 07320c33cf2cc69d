// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/keepsake/internal/platform/apperr"
	"github.com/taibuivan/keepsake/internal/platform/validate"
)

/*
TestValidator_Required covers the empty and whitespace-only rejections.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"present", "value", false},
		{"empty", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.Required("field", tt.value).Err()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestValidator_Lengths verifies that length rules count Unicode characters,
not bytes.
*/
func TestValidator_Lengths(t *testing.T) {
	v := &validate.Validator{}
	// Three runes, nine bytes: must satisfy both bounds.
	assert.NoError(t, v.MinLen("name", "日本語", 3).MaxLen("name", "日本語", 3).Err())

	v = &validate.Validator{}
	assert.Error(t, v.MinLen("name", "ab", 3).Err())

	v = &validate.Validator{}
	assert.Error(t, v.MaxLen("name", "abcd", 3).Err())
}

/*
TestValidator_Email covers accepted and rejected address shapes.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain", "user@example.com", false},
		{"subdomain", "user@mail.example.co.jp", false},
		{"no_at", "userexample.com", true},
		{"no_domain", "user@", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.Email("email", tt.value).Err()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestValidator_UUID accepts v4 and v7 forms in either case and rejects
everything else.
*/
func TestValidator_UUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"uuidv7", "0191e9a0-5a6b-7cde-8f01-234567890abc", false},
		{"uppercase", "0191E9A0-5A6B-7CDE-8F01-234567890ABC", false},
		{"missing_hyphens", "0191e9a05a6b7cde8f01234567890abc", true},
		{"too_short", "0191e9a0-5a6b", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.UUID("id", tt.value).Err()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestValidator_CollectsAllFailures verifies that the chain keeps evaluating
after the first failure and reports every field at once.
*/
func TestValidator_CollectsAllFailures(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("name", "").
		Email("email", "nope").
		MinLen("password", "123", 8).
		Err()

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Len(t, appErr.Details, 3)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Custom verifies the escape hatch for ad hoc rules.
*/
func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.Custom("limit", false, "Must be positive").Err())

	v = &validate.Validator{}
	err := v.Custom("limit", true, "Must be positive").Err()
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Must be positive", appErr.Details[0].Message)
}
