package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coursetube/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProfileService is the interface that wraps profile reads and partial updates
type ProfileService interface {
	// Method GetProfile retrieves the profile view with derived activity
	// counters, recomputed on every call.
	GetProfile(ctx context.Context, userID int) (*models.ProfileResponse, error)
	// Method GetUserInfo retrieves the basic account view.
	GetUserInfo(ctx context.Context, userID int) (*models.UserInfoResponse, error)
	// Method UpdateProfile applies a partial update; only fields present
	// in the request are mutated, and all changes commit in one transaction.
	UpdateProfile(ctx context.Context, userID int, req *models.UpdateProfileRequest) (*models.User, error)
}

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	BaseHandler
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(svc ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all profile handler routes
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.GetProfile)
	r.Get("/profile/{id}", h.GetUserInfo)
	r.Patch("/update-profile/{id}", h.UpdateProfile)
}

// GetProfile handles GET /profile?user_id=
// @Summary Get profile with activity counters
// @Tags profile
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} models.ProfileResponse
// @Failure 400 {object} map[string]string "User ID is required"
// @Failure 404 {object} map[string]string "User not found"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get("user_id")
	if userIDStr == "" {
		h.respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

// GetUserInfo handles GET /profile/{id}
// @Summary Get basic account info
// @Tags profile
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserInfoResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /profile/{id} [get]
func (h *ProfileHandler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	info, err := h.service.GetUserInfo(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, info)
}

// UpdateProfile handles PATCH /update-profile/{id}
// @Summary Partially update a profile
// @Description Apply only the fields present in the body; a password change requires old_pass, new_pass and c_pass
// @Tags profile
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} map[string]any "Updated user"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /update-profile/{id} [patch]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
