// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/keepsake/internal/platform/apperr"
	"github.com/taibuivan/keepsake/internal/platform/constants"
)

// RedisLoginThrottle implements [LoginThrottle] on a Redis failure counter
// with a rolling expiry window.
type RedisLoginThrottle struct {
	client *redis.Client
	logger *slog.Logger
}

// NewLoginThrottle creates a new Redis-backed [LoginThrottle].
func NewLoginThrottle(client *redis.Client, logger *slog.Logger) *RedisLoginThrottle {
	return &RedisLoginThrottle{client: client, logger: logger}
}

// Allow checks the current failure count for name.
//
// Redis connectivity problems are logged and treated as "allowed": a broken
// throttle backend degrades to unthrottled logins, never to a global lockout.
func (throttle *RedisLoginThrottle) Allow(ctx context.Context, name string) error {
	key := constants.RedisPrefixLoginFailures + name

	raw, err := throttle.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			throttle.logger.Error("login_throttle_get_failed", slog.Any("error", err))
		}
		return nil
	}

	failures, err := strconv.Atoi(raw)
	if err != nil {
		// Corrupt counter: drop it rather than guess.
		throttle.client.Del(ctx, key)
		return nil
	}

	if failures >= constants.LoginMaxFailures {
		ttl, err := throttle.client.TTL(ctx, key).Result()
		retryAfter := int(constants.LoginFailureWindow.Seconds())
		if err == nil && ttl > 0 {
			retryAfter = int(ttl.Seconds())
		}
		return apperr.RateLimited(retryAfter)
	}

	return nil
}

// RecordFailure increments the failure counter and refreshes the window.
func (throttle *RedisLoginThrottle) RecordFailure(ctx context.Context, name string) error {
	key := constants.RedisPrefixLoginFailures + name

	if err := throttle.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_login_throttle_incr_failed: %w", err)
	}

	// Refresh the window on every failure so the lockout slides.
	if err := throttle.client.Expire(ctx, key, constants.LoginFailureWindow).Err(); err != nil {
		return fmt.Errorf("redis_login_throttle_expire_failed: %w", err)
	}

	return nil
}

// Reset clears the failure counter after a successful login.
func (throttle *RedisLoginThrottle) Reset(ctx context.Context, name string) {
	key := constants.RedisPrefixLoginFailures + name
	if err := throttle.client.Del(ctx, key).Err(); err != nil {
		throttle.logger.Error("login_throttle_reset_failed", slog.Any("error", err))
	}
}
