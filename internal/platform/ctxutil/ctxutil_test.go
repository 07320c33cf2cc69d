// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/keepsake/internal/platform/ctxutil"
)

/*
TestRequestID verifies the round trip and the empty-context fallback.
*/
func TestRequestID(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))

	assert.Empty(t, ctxutil.GetRequestID(context.Background()))
}

/*
TestLogger verifies the round trip and that a bare context falls back to the
process default logger instead of nil.
*/
func TestLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := ctxutil.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))

	fallback := ctxutil.GetLogger(context.Background())
	assert.NotNil(t, fallback)
}
