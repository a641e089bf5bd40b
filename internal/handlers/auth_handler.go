package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/coursetube/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxImageMemory bounds the in-memory part of multipart parsing
const maxImageMemory = 10 << 20

// AuthService is the interface that wraps credential management
type AuthService interface {
	// Method Register creates a new user account with an optional profile image.
	//
	// "image" may be nil when no file was uploaded. On any failure the
	// stored file is rolled back together with the row.
	Register(ctx context.Context, req *models.RegisterRequest, image io.Reader, imageFilename string) (*models.RegisterResponse, error)
	// Method Login authenticates a user and returns the session summary.
	// No token is minted; session continuity is caller-managed.
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// AuthHandler handles registration and login requests
type AuthHandler struct {
	BaseHandler
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// Register handles POST /register
// @Summary Register a new account
// @Description Create a student or teacher account with an optional profile image
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param confirm_password formData string true "Password confirmation"
// @Param user_type formData string false "Role: student or teacher (default student)"
// @Param profile formData file false "Profile image"
// @Success 201 {object} models.RegisterResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, image, imageFilename, err := decodeRegisterRequest(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), req, image, imageFilename)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// decodeRegisterRequest reads the registration fields and the optional
// profile image from a multipart form, falling back to a JSON body for
// clients that register without an upload.
func decodeRegisterRequest(r *http.Request) (*models.RegisterRequest, io.Reader, string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImageMemory); err != nil {
			return nil, nil, "", err
		}

		req := &models.RegisterRequest{
			Username:        r.FormValue("username"),
			Email:           r.FormValue("email"),
			Password:        r.FormValue("password"),
			ConfirmPassword: r.FormValue("confirm_password"),
			Role:            r.FormValue("user_type"),
		}

		file, header, err := r.FormFile("profile")
		if err == http.ErrMissingFile {
			return req, nil, "", nil
		}
		if err != nil {
			return nil, nil, "", err
		}
		return req, file, header.Filename, nil
	}

	req := &models.RegisterRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, nil, "", err
	}
	return req, nil, "", nil
}

// Login handles POST /login
// @Summary Log in
// @Description Verify credentials and return the session summary
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]string "Missing email or password"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 404 {object} map[string]string "No account for email"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
