// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	perrors "github.com/abgdnv/productstore/internal/product/errors"
	"github.com/abgdnv/productstore/internal/product/service"
	"github.com/abgdnv/productstore/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewHandler creates a new Handler backed by the given service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// CreatedResponse is the body returned by Create.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// RegisterRoutes registers the HTTP routes for the product service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// Get retrieves a product by its ID.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to get product", "ID", id)
	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, id, "retrieve", err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// GetAll retrieves all products.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	list := h.service.GetAll(r.Context())
	h.logger.DebugContext(r.Context(), "Retrieved product list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// Create handles the creation of a new product and answers with its generated ID.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto service.ProductDto
	if !web.DecodeJSON(w, r, h.logger, &dto) {
		return
	}

	id, err := h.service.Create(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, uuid.Nil, "create", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product created", "ID", id, "Name", dto.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, CreatedResponse{ID: id})
}

// Update stores the product under the path ID, creating it when absent.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var dto service.ProductDto
	if !web.DecodeJSON(w, r, h.logger, &dto) {
		return
	}

	if err := h.service.Update(r.Context(), id, dto); err != nil {
		h.respondServiceError(w, r, id, "update", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a product by its ID.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	h.service.Delete(r.Context(), id)
	h.logger.InfoContext(r.Context(), "Product deleted", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, id uuid.UUID, action string, err error) {
	switch {
	case errors.Is(err, perrors.ErrProductNotFound):
		h.logger.WarnContext(r.Context(), "Product not found", "ID", id)
		web.RespondError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
	case errors.Is(err, perrors.ErrInvalidArgument):
		h.logger.WarnContext(r.Context(), "Invalid argument", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Failed to "+action+" product", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Sprintf("Failed to %s product", action))
	}
}
