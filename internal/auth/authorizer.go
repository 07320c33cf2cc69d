// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"

	"github.com/taibuivan/keepsake/internal/platform/middleware"
)

// authorizerAdapter lifts [Service.Authorize]'s concrete *users.User result
// into the [middleware.Identity] interface the HTTP chain operates on.
type authorizerAdapter struct {
	service *Service
}

// AsAuthorizer adapts the auth service to [middleware.Authorizer].
func AsAuthorizer(service *Service) middleware.Authorizer {
	return authorizerAdapter{service: service}
}

// Authorize implements [middleware.Authorizer].
func (adapter authorizerAdapter) Authorize(ctx context.Context, token string) (middleware.Identity, error) {
	user, err := adapter.service.Authorize(ctx, token)
	if err != nil {
		return nil, err
	}
	return user, nil
}
