// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// LoginThrottle counts failed password attempts per normalized login name
// and blocks further attempts once the window limit is reached.
//
// # Domain Ownership
//
// Throttling is hardening of the login path only. It is not a session table
// and has no effect on already-issued tokens.
type LoginThrottle interface {
	// Allow returns nil if another attempt may proceed, or
	// [apperr.RateLimited] once the failure budget is exhausted.
	//
	// Backend outages fail open: an unreachable counter must never lock
	// every account out.
	Allow(ctx context.Context, name string) error

	// RecordFailure increments the rolling failure counter for name.
	RecordFailure(ctx context.Context, name string) error

	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, name string)
}
