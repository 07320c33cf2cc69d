// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package items

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/keepsake/internal/platform/request"
	"github.com/taibuivan/keepsake/internal/platform/respond"
	"github.com/taibuivan/keepsake/internal/users"
	"github.com/taibuivan/keepsake/pkg/pagination"
)

// Handler implements the item HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the item routes. All of them require an
// authenticated, active caller; the server mounts this router behind that
// middleware.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createItem)
	router.Get("/", handler.listItems)
	router.Get("/{itemID}", handler.getItem)

	return router
}

// createRequest represents the JSON payload expected for item creation.
type createRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// createItem handles POST /api/v1/items.
//
// The owner is taken from the owner_id query parameter when present,
// otherwise the item is attributed to the authenticated caller.
func (handler *Handler) createItem(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ownerID := request.URL.Query().Get("owner_id")
	if ownerID == "" {
		if caller := users.FromContext(request.Context()); caller != nil {
			ownerID = caller.ID
		}
	}

	item, err := handler.service.Create(request.Context(), CreateInput{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, item)
}

// getItem handles GET /api/v1/items/{itemID}.
func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	itemID := requestutil.Param(request, "itemID")

	item, err := handler.service.Get(request.Context(), itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

// listItems handles GET /api/v1/items with offset/limit pagination.
func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	records, total, err := handler.service.List(request.Context(), paginationParams.Offset(), paginationParams.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
