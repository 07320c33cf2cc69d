// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/keepsake/internal/platform/sec"
)

const (
	testSecret = "unit-test-signing-secret"
	testIssuer = "keepsake.test"
)

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()

	service, err := sec.NewTokenService(testSecret, testIssuer)
	require.NoError(t, err)

	return service
}

/*
TestNewTokenService_EmptySecret verifies the constructor refuses an empty
signing secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	service, err := sec.NewTokenService("", testIssuer)
	assert.Error(t, err)
	assert.Nil(t, service)
}

/*
TestTokenService_RoundTrip verifies that a freshly issued token verifies and
yields back the subject, issuer, and a future expiry.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTokenService(t)

	tokenString, err := service.GenerateAccessToken("alice", 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := service.VerifyToken(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

/*
TestTokenService_VerifyFailures verifies that every verification failure mode
collapses into ErrInvalidToken: wrong secret, tampered payload, expiry, and
garbage input.
*/
func TestTokenService_VerifyFailures(t *testing.T) {
	service := newTokenService(t)

	validToken, err := service.GenerateAccessToken("alice", 30*time.Minute)
	require.NoError(t, err)

	expiredToken, err := service.GenerateAccessToken("alice", -time.Minute)
	require.NoError(t, err)

	otherService, err := sec.NewTokenService("a-completely-different-secret", testIssuer)
	require.NoError(t, err)
	foreignToken, err := otherService.GenerateAccessToken("alice", 30*time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
	}{
		{"empty_string", ""},
		{"not_a_jwt", "definitely.not.a-token"},
		{"wrong_secret", foreignToken},
		{"tampered_payload", tamperPayload(t, validToken)},
		{"expired", expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifyToken(tt.tokenString)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestTokenService_AlgorithmSubstitution verifies that tokens whose header
names a different algorithm are rejected even when the signature would
otherwise check out, including unsigned "none" tokens.
*/
func TestTokenService_AlgorithmSubstitution(t *testing.T) {
	service := newTokenService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
	}

	// HS384 signed with the correct secret: the signature is valid, the
	// algorithm is not the fixed expectation.
	hs384Token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tokenString := range map[string]string{
		"hs384": hs384Token,
		"none":  noneToken,
	} {
		t.Run(name, func(t *testing.T) {
			parsed, err := service.VerifyToken(tokenString)
			assert.Nil(t, parsed)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

// tamperPayload rewrites the subject inside a signed token without
// re-signing, invalidating the signature.
func tamperPayload(t *testing.T, tokenString string) string {
	t.Helper()

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	forged := strings.Replace(string(payload), "alice", "mallory", 1)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

	return strings.Join(parts, ".")
}
