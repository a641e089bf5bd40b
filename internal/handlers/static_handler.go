package handlers

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FileStore is the interface that wraps read access to stored images
type FileStore interface {
	// Open opens a stored file for reading. Filenames that would escape
	// the upload root are rejected.
	Open(filename string) (*os.File, error)
}

// StaticHandler serves uploaded images back by their stored reference
type StaticHandler struct {
	BaseHandler
	files FileStore
}

// NewStaticHandler creates a new static file handler
func NewStaticHandler(files FileStore, logger *zap.Logger) *StaticHandler {
	return &StaticHandler{
		BaseHandler: BaseHandler{logger: logger},
		files:       files,
	}
}

// RegisterRoutes registers the static file route
func (h *StaticHandler) RegisterRoutes(r chi.Router) {
	r.Get("/static/uploads/{filename}", h.ServeFile)
}

// ServeFile handles GET /static/uploads/{filename}
// @Summary Serve an uploaded image
// @Tags static
// @Produce application/octet-stream
// @Param filename path string true "Stored file name"
// @Success 200 "File content"
// @Failure 404 {object} map[string]string "File not found"
// @Router /static/uploads/{filename} [get]
func (h *StaticHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	file, err := h.files.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			h.respondError(w, http.StatusNotFound, "file not found")
			return
		}
		h.logger.Error("failed to open stored file", zap.String("filename", filename), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to serve file")
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		h.logger.Error("failed to stat stored file", zap.String("filename", filename), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to serve file")
		return
	}

	http.ServeContent(w, r, filename, info.ModTime(), file)
}
