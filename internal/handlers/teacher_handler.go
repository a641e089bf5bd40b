package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/coursetube/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TeacherService is the interface that wraps the teacher directory
type TeacherService interface {
	// Method Create registers a new teacher with an optional image.
	Create(ctx context.Context, name, email, bio, subject string, image io.Reader, imageFilename string) (*models.Teacher, error)
	// Method List retrieves all teachers.
	List(ctx context.Context) ([]models.Teacher, error)
	// Method Get retrieves a teacher by ID.
	Get(ctx context.Context, teacherID int) (*models.Teacher, error)
	// Method Update applies a partial update; a new image replaces the old file.
	Update(ctx context.Context, teacherID int, changes *models.UpdateTeacherRequest, image io.Reader, imageFilename string) (*models.Teacher, error)
	// Method Delete removes a teacher and its stored image.
	Delete(ctx context.Context, teacherID int) error
}

// TeacherHandler handles teacher directory HTTP requests
type TeacherHandler struct {
	BaseHandler
	service TeacherService
}

// NewTeacherHandler creates a new teacher handler
func NewTeacherHandler(svc TeacherService, logger *zap.Logger) *TeacherHandler {
	return &TeacherHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all teacher handler routes
func (h *TeacherHandler) RegisterRoutes(r chi.Router) {
	r.Route("/teachers", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /teachers
// @Summary Create a teacher
// @Tags teachers
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param bio formData string false "Bio"
// @Param subject formData string false "Subject"
// @Param img_url formData file false "Teacher image"
// @Success 201 {object} models.Teacher
// @Failure 400 {object} map[string]string "Name and email are required"
// @Failure 409 {object} map[string]string "Email already exists"
// @Router /teachers [post]
func (h *TeacherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var name, email, bio, subject string
	var image io.Reader
	var imageFilename string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImageMemory); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		name = r.FormValue("name")
		email = r.FormValue("email")
		bio = r.FormValue("bio")
		subject = r.FormValue("subject")

		if file, header, err := r.FormFile("img_url"); err == nil {
			image = file
			imageFilename = header.Filename
		}
	} else {
		var body models.Teacher
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		name, email, bio, subject = body.Name, body.Email, body.Bio, body.Subject
	}

	teacher, err := h.service.Create(r.Context(), name, email, bio, subject, image, imageFilename)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Teacher created successfully",
		"teacher": teacher,
	})
}

// List handles GET /teachers
// @Summary List all teachers
// @Tags teachers
// @Produce json
// @Success 200 {array} models.Teacher
// @Router /teachers [get]
func (h *TeacherHandler) List(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if teachers == nil {
		teachers = []models.Teacher{}
	}
	h.respondJSON(w, http.StatusOK, teachers)
}

// Get handles GET /teachers/{id}
// @Summary Get a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.Teacher
// @Failure 404 {object} map[string]string "Teacher not found"
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Get(w http.ResponseWriter, r *http.Request) {
	teacherID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid teacher ID")
		return
	}

	teacher, err := h.service.Get(r.Context(), teacherID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, teacher)
}

// Update handles PATCH /teachers/{id}
// @Summary Partially update a teacher
// @Tags teachers
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} map[string]any "Updated teacher"
// @Failure 404 {object} map[string]string "Teacher not found"
// @Router /teachers/{id} [patch]
func (h *TeacherHandler) Update(w http.ResponseWriter, r *http.Request) {
	teacherID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid teacher ID")
		return
	}

	changes := &models.UpdateTeacherRequest{}
	var image io.Reader
	var imageFilename string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImageMemory); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		// Only fields present in the form are applied
		for field, dst := range map[string]**string{
			"name":    &changes.Name,
			"email":   &changes.Email,
			"bio":     &changes.Bio,
			"subject": &changes.Subject,
		} {
			if values, present := r.MultipartForm.Value[field]; present && len(values) > 0 {
				value := values[0]
				*dst = &value
			}
		}

		if file, header, err := r.FormFile("img_url"); err == nil {
			image = file
			imageFilename = header.Filename
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(changes); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	teacher, err := h.service.Update(r.Context(), teacherID, changes, image, imageFilename)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "Teacher updated successfully",
		"teacher": teacher,
	})
}

// Delete handles DELETE /teachers/{id}
// @Summary Delete a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Teacher not found"
// @Router /teachers/{id} [delete]
func (h *TeacherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	teacherID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid teacher ID")
		return
	}

	if err := h.service.Delete(r.Context(), teacherID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Teacher deleted successfully"})
}
