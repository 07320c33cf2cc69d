// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the auth package's TokenCodec interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure kind for token verification.
//
// Signature mismatch, malformed structure, algorithm substitution, and
// expiry all collapse into this sentinel so that callers cannot build an
// oracle out of the distinctions. The wrapping error text retains the
// underlying cause for server-side logs.
var ErrInvalidToken = errors.New("invalid token")

// AuthClaims is the claim set embedded inside an access token.
//
// The Subject registered claim carries the account's login name, and
// ExpiresAt carries the absolute expiry. Nothing else is required: tokens
// are resolved back to the user store on every request, so no profile data
// is duplicated into the payload.
type AuthClaims struct {
	jwt.RegisteredClaims
}

// TokenService signs and verifies access tokens using HS256 over a shared
// process-wide secret.
//
// The secret is loaded once at startup and never rotated at runtime; the
// service is safe for concurrent use.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService.
//
// An empty secret is refused outright: signing with an empty key would make
// every token forgeable.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// GenerateAccessToken creates a signed access token for the given subject.
//
// # Parameters
//   - subject: The login name of the account.
//   - timeToLive: The duration before the token expires. Expiry is absolute
//     wall-clock UTC, not sliding.
func (service *TokenService) GenerateAccessToken(subject string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now().UTC()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, algorithm, and expiry of a token string.
//
// # Flow
//  1. Reject any token whose header names a different algorithm than HS256
//     (algorithm-substitution defense — the expected method is fixed, never
//     read from the token).
//  2. Verify the HMAC signature against the shared secret.
//  3. Verify the expiry claim against current time.
//
// Any failure returns an error wrapping [ErrInvalidToken]; the wrapped text
// carries the concrete cause for logging only.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: unusable claims", ErrInvalidToken)
	}

	return claims, nil
}
