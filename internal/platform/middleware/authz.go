// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/keepsake/internal/platform/apperr"
	"github.com/taibuivan/keepsake/internal/platform/ctxkey"
	"github.com/taibuivan/keepsake/internal/platform/respond"
)

// Identity is the resolved account an authorized request acts as.
//
// # Why an interface?
//
// Defining Identity here decouples the middleware from the users package,
// avoiding an import cycle (domain handlers import this package for gating)
// and letting unit tests inject trivial fakes.
type Identity interface {
	// Principal returns the unique login name.
	Principal() string
	// Active reports whether the account may use authenticated endpoints.
	Active() bool
}

// Authorizer resolves a bearer token string to the identity it names.
//
// The concrete implementation is the auth service; any token failure
// (signature, expiry, algorithm, unknown subject) must come back as a 401
// [apperr.AppError] with a uniform message.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (Identity, error)
}

// Authenticate extracts and verifies the bearer token from the Authorization
// header and resolves it to a stored identity.
//
// # Flow
//  1. No Authorization header: the request proceeds as anonymous. Routes
//     that require a caller reject it later via [RequireActiveIdentity].
//  2. Malformed header or failed authorization: respond 401 immediately with
//     the Bearer challenge.
//  3. Success: inject the resolved [Identity] into the request context.
func Authenticate(authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Resolution ───────────────────────────────────────────
			identity, err := authorizer.Authorize(request.Context(), parts[1])
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := context.WithValue(request.Context(), ctxkey.KeyIdentity, identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireActiveIdentity blocks requests that are not authenticated or whose
// account is disabled.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Status Codes
//   - Missing identity (no/unresolved token): 401 with the Bearer challenge —
//     re-authenticating can fix it.
//   - Resolved but inactive identity: 400 "Inactive user" — re-authenticating
//     will not help, so no challenge is sent.
func RequireActiveIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := GetIdentity(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}

		if !identity.Active() {
			respond.Error(writer, request, apperr.InactiveAccount())
			return
		}

		next.ServeHTTP(writer, request)
	})
}

// GetIdentity retrieves the resolved [Identity] from the [context.Context].
//
// # Returns
//   - The resolved identity if the request is authenticated.
//   - nil if the request is anonymous.
func GetIdentity(ctx context.Context) Identity {
	identity, ok := ctx.Value(ctxkey.KeyIdentity).(Identity)
	if !ok {
		return nil
	}
	return identity
}
