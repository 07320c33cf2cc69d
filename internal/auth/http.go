// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/keepsake/internal/platform/respond"
	"github.com/taibuivan/keepsake/internal/platform/validate"
)

// Handler implements the authentication HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /token : OAuth2 password-flow login, returns a bearer token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/token", handler.token)

	return router
}

// tokenResponse is the OAuth2 password-flow response body.
//
// It is deliberately NOT wrapped in the standard data envelope: OAuth2
// clients expect access_token and token_type at the top level.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// token handles POST /api/v1/auth/token.
//
// The request body is form-encoded (username, password), matching the OAuth2
// password grant. On any credential failure the response is a 401 with the
// Bearer challenge and a message that never indicates which field was wrong.
func (handler *Handler) token(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	if err := request.ParseForm(); err != nil {
		respond.Error(writer, request, validate.RequiredError("body", "must be form-encoded"))
		return
	}

	username := request.PostFormValue("username")
	password := request.PostFormValue("password")

	if username == "" || password == "" {
		respond.Error(writer, request, validate.RequiredError("username/password", "are required"))
		return
	}

	// ── 2. Application Execution ──────────────────────────────────────────

	session, err := handler.authService.Login(request.Context(), username, password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Presentation Output ────────────────────────────────────────────

	respond.JSON(writer, http.StatusOK, tokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
	})
}
