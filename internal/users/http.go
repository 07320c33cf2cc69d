// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/keepsake/internal/platform/request"
	"github.com/taibuivan/keepsake/internal/platform/respond"
	"github.com/taibuivan/keepsake/pkg/pagination"
)

// Handler implements the account HTTP endpoints.
//
// It contains no business logic or database queries — JSON parsing, fast-fail
// validation, and envelope formatting only.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the account routes on the given routers.
//
// Registration is deliberately public: the first account must be creatable
// before any token exists. Reads require an authenticated, active caller and
// are therefore mounted on the protected router by the server.
func (handler *Handler) RegisterRoutes(public, protected chi.Router) {
	public.Post("/users", handler.register)

	protected.Get("/users", handler.listUsers)
	protected.Get("/users/{userID}", handler.getUser)
}

// registerRequest represents the JSON payload expected for account creation.
type registerRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
}

// register handles POST /api/v1/users.
//
// # Returns
//   - HTTP 201 Created with the new account profile (hash omitted).
//   - HTTP 400 Bad Request if validation rules fail.
//   - HTTP 409 Conflict if name/email is taken.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), RegisterInput{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// getUser handles GET /api/v1/users/{userID}.
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.Param(request, "userID")

	user, err := handler.service.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// listUsers handles GET /api/v1/users with offset/limit pagination.
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	accounts, total, err := handler.service.List(request.Context(), paginationParams.Offset(), paginationParams.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, accounts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
