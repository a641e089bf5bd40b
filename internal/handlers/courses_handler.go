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

// CatalogService is the interface that wraps course catalog reads
type CatalogService interface {
	// Method ListPlaylists retrieves all playlists.
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	// Method ListVideos retrieves the videos of one playlist.
	ListVideos(ctx context.Context, playlistID int) ([]models.Video, error)
	// Method GetVideo retrieves a single video scoped to its playlist.
	GetVideo(ctx context.Context, playlistID, videoID int) (*models.VideoDetailResponse, error)
}

// InteractionService is the interface that wraps comments, likes and saves
type InteractionService interface {
	// Method AddComment persists a comment on a video.
	AddComment(ctx context.Context, playlistID, videoID, userID int, text string) (*models.Comment, error)
	// Method LikeVideo records a like; a repeated like is a conflict.
	LikeVideo(ctx context.Context, playlistID, videoID, userID int) error
	// Method SaveVideo records a saved-video marker; a repeated save is a conflict.
	SaveVideo(ctx context.Context, videoID, userID int) error
}

// CoursesHandler handles course browsing and video interactions
type CoursesHandler struct {
	BaseHandler
	catalog      CatalogService
	interactions InteractionService
}

// NewCoursesHandler creates a new courses handler
func NewCoursesHandler(catalog CatalogService, interactions InteractionService, logger *zap.Logger) *CoursesHandler {
	return &CoursesHandler{
		BaseHandler:  BaseHandler{logger: logger},
		catalog:      catalog,
		interactions: interactions,
	}
}

// RegisterRoutes registers all courses handler routes
func (h *CoursesHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.ListPlaylists)
		r.Get("/{playlistId}", h.ListVideos)
		r.Get("/{playlistId}/{videoId}", h.GetVideo)
		r.Post("/{playlistId}/{videoId}/comment", h.AddComment)
		r.Post("/{playlistId}/{videoId}/like", h.LikeVideo)
		r.Post("/{playlistId}/{videoId}/save", h.SaveVideo)
	})
}

// ListPlaylists handles GET /courses
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.Playlist
// @Router /courses [get]
func (h *CoursesHandler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.catalog.ListPlaylists(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if playlists == nil {
		playlists = []models.Playlist{}
	}
	h.respondJSON(w, http.StatusOK, playlists)
}

// ListVideos handles GET /courses/{playlistId}
// @Summary List videos of a course
// @Tags courses
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Success 200 {array} models.Video
// @Failure 404 {object} map[string]string "Playlist not found"
// @Router /courses/{playlistId} [get]
func (h *CoursesHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	playlistID, err := strconv.Atoi(chi.URLParam(r, "playlistId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid playlist ID")
		return
	}

	videos, err := h.catalog.ListVideos(r.Context(), playlistID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if videos == nil {
		videos = []models.Video{}
	}
	h.respondJSON(w, http.StatusOK, videos)
}

// GetVideo handles GET /courses/{playlistId}/{videoId}
// @Summary Get a video within its course
// @Tags courses
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Param videoId path int true "Video ID"
// @Success 200 {object} models.VideoDetailResponse
// @Failure 404 {object} map[string]string "Playlist or video not found"
// @Router /courses/{playlistId}/{videoId} [get]
func (h *CoursesHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	playlistID, videoID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	video, err := h.catalog.GetVideo(r.Context(), playlistID, videoID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, video)
}

// AddComment handles POST /courses/{playlistId}/{videoId}/comment
// @Summary Comment on a video
// @Tags interactions
// @Accept json
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Param videoId path int true "Video ID"
// @Param request body models.CommentRequest true "Comment"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Playlist or video not found"
// @Router /courses/{playlistId}/{videoId}/comment [post]
func (h *CoursesHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	playlistID, videoID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.interactions.AddComment(r.Context(), playlistID, videoID, req.UserID, req.Text); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"message": "Comment added successfully!"})
}

// LikeVideo handles POST /courses/{playlistId}/{videoId}/like
// @Summary Like a video
// @Tags interactions
// @Accept json
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Param videoId path int true "Video ID"
// @Param request body models.InteractionRequest true "User"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string "Playlist or video not found"
// @Failure 409 {object} map[string]string "Already liked"
// @Router /courses/{playlistId}/{videoId}/like [post]
func (h *CoursesHandler) LikeVideo(w http.ResponseWriter, r *http.Request) {
	playlistID, videoID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req models.InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.interactions.LikeVideo(r.Context(), playlistID, videoID, req.UserID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"message": "Video liked successfully!"})
}

// SaveVideo handles POST /courses/{playlistId}/{videoId}/save
// @Summary Save a video
// @Tags interactions
// @Accept json
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Param videoId path int true "Video ID"
// @Param request body models.InteractionRequest true "User"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string "Video not found"
// @Failure 409 {object} map[string]string "Already saved"
// @Router /courses/{playlistId}/{videoId}/save [post]
func (h *CoursesHandler) SaveVideo(w http.ResponseWriter, r *http.Request) {
	_, videoID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req models.InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.interactions.SaveVideo(r.Context(), videoID, req.UserID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"message": "Video saved successfully!"})
}

// pathIDs parses the playlist and video IDs from the URL path
func (h *CoursesHandler) pathIDs(w http.ResponseWriter, r *http.Request) (playlistID, videoID int, ok bool) {
	playlistID, err := strconv.Atoi(chi.URLParam(r, "playlistId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid playlist ID")
		return 0, 0, false
	}
	videoID, err = strconv.Atoi(chi.URLParam(r, "videoId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid video ID")
		return 0, 0, false
	}
	return playlistID, videoID, true
}
