package handlers

import (
	"context"
	"net/http"

	"github.com/coursetube/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SearchService is the interface that wraps multi-entity search
type SearchService interface {
	// Method Search runs a case-insensitive substring query against users,
	// playlists and videos. A blank query is a validation error; an empty
	// result set is not.
	Search(ctx context.Context, query string) (*models.SearchResponse, error)
}

// SearchHandler handles search HTTP requests
type SearchHandler struct {
	BaseHandler
	service SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all search handler routes
func (h *SearchHandler) RegisterRoutes(r chi.Router) {
	r.Get("/search", h.Search)
}

// Search handles GET /search?q=
// @Summary Search users, videos and playlists
// @Tags search
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]string "Empty query"
// @Router /search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, results)
}
