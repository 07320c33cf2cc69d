// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package auth implements the authentication and session core.
//
// # Architecture
//
// Three use cases live here, mirroring the request lifecycle:
//
//   - Login: credential verification + access-token issuance.
//   - Authorize: bearer-token verification + identity resolution.
//   - Throttling: per-username failure counting to slow brute force.
//
// Every failure is a typed [apperr.AppError]; the HTTP boundary performs the
// single translation into status codes and the Bearer challenge header.
// Internally distinct causes (bad signature, expiry, unknown subject, wrong
// password) are logged but never echoed to the caller.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/keepsake/internal/platform/apperr"
	"github.com/taibuivan/keepsake/internal/platform/constants"
	"github.com/taibuivan/keepsake/internal/platform/ctxutil"
	"github.com/taibuivan/keepsake/internal/platform/sec"
	"github.com/taibuivan/keepsake/internal/users"
	"github.com/taibuivan/keepsake/pkg/normalize"
)

// TokenCodec defines the contract for signing and verifying access tokens.
//
// # Why an interface?
//
// The concrete implementation is [sec.TokenService]; tests substitute codecs
// with a different secret or a broken clock without touching this package.
type TokenCodec interface {
	GenerateAccessToken(subject string, timeToLive time.Duration) (string, error)
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Service implements the authentication and authorization use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to credential checking,
// token issuance, or authorization logic must be reviewed by the security
// owner.
type Service struct {
	userRepository users.Repository
	tokenCodec     TokenCodec
	throttle       LoginThrottle
	logger         *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	userRepo users.Repository,
	codec TokenCodec,
	throttle LoginThrottle,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository: userRepo,
		tokenCodec:     codec,
		throttle:       throttle,
		logger:         logger,
	}
}

// errBadCredentials is the uniform credential failure. Unknown name and wrong
// password share one message so no oracle distinguishes them.
func errBadCredentials() *apperr.AppError {
	return apperr.Unauthorized("Incorrect username or password")
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	TokenType   string
	User        *users.User
}

// Login validates credentials and issues a bearer token.
//
// # Flow
//  1. Normalize the login name and consult the throttle.
//  2. Look up the account; on a miss, burn a bcrypt comparison so the
//     response time matches the wrong-password path.
//  3. Verify the password hash.
//  4. Issue an HS256 token with subject = login name and a fixed 30-minute
//     expiry.
//
// Two concurrent logins for the same account both succeed and may hold
// different valid tokens; nothing is stored server-side.
func (service *Service) Login(ctx context.Context, name, password string) (*Session, error) {
	name = normalize.Username(name)

	// ── 1. Brute-Force Throttle ───────────────────────────────────────────

	if err := service.throttle.Allow(ctx, name); err != nil {
		return nil, err
	}

	// ── 2. Credential Verification ────────────────────────────────────────

	user, err := service.userRepository.FindByName(ctx, name)
	if err != nil {
		sec.BurnPasswordCheck(password)
		service.recordFailure(ctx, name, "unknown_name")
		return nil, errBadCredentials()
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		service.recordFailure(ctx, name, "password_mismatch")
		return nil, errBadCredentials()
	}

	service.throttle.Reset(ctx, name)

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	accessToken, err := service.IssueToken(user, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("login_succeeded", slog.String("user_id", user.ID))

	return &Session{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// IssueToken builds the claim set {subject, expiry} for an authenticated
// identity and signs it.
//
// Callers outside tests should pass [constants.AccessTokenTTL]; the ttl
// parameter exists so expiry behavior is testable without a real clock.
func (service *Service) IssueToken(user *users.User, ttl time.Duration) (string, error) {
	return service.tokenCodec.GenerateAccessToken(user.Name, ttl)
}

// Authorize resolves a bearer token to the identity it names.
//
// # Flow
//  1. Verify signature, algorithm, and expiry via the codec.
//  2. Require a non-empty subject claim.
//  3. Resolve the subject to a stored account.
//
// All three failures collapse to the same 401 ("deleted account" must be
// indistinguishable from "forged token"), but each is logged with its
// concrete cause at debug level for operators.
//
// The active flag is deliberately NOT checked here: "token valid but account
// disabled" is a different condition with a different status code, enforced
// by the RequireActive middleware after authorization succeeds.
func (service *Service) Authorize(ctx context.Context, token string) (*users.User, error) {
	log := ctxutil.GetLogger(ctx)

	claims, err := service.tokenCodec.VerifyToken(token)
	if err != nil {
		log.DebugContext(ctx, "token_rejected", slog.String("cause", err.Error()))
		return nil, apperr.Unauthorized("Could not validate credentials")
	}

	subject := claims.Subject
	if subject == "" {
		log.DebugContext(ctx, "token_rejected", slog.String("cause", "missing subject claim"))
		return nil, apperr.Unauthorized("Could not validate credentials")
	}

	user, err := service.userRepository.FindByName(ctx, subject)
	if err != nil {
		log.DebugContext(ctx, "token_rejected", slog.String("cause", "unknown subject"))
		return nil, apperr.Unauthorized("Could not validate credentials")
	}

	return user, nil
}

// recordFailure bumps the throttle counter; throttle backend errors are
// logged and swallowed so Redis trouble cannot lock everyone out.
func (service *Service) recordFailure(ctx context.Context, name, cause string) {
	service.logger.Warn("login_failed", slog.String("name", name), slog.String("cause", cause))
	if err := service.throttle.RecordFailure(ctx, name); err != nil {
		service.logger.Error("login_throttle_record_failed", slog.Any("error", err))
	}
}
