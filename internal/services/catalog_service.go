package services

import (
	"context"

	"github.com/coursetube/backend/internal/models"
)

// PlaylistRepository is the interface that wraps methods for Playlist table data access
type PlaylistRepository interface {
	// GetAll retrieves all playlists in storage order.
	GetAll(ctx context.Context) ([]models.Playlist, error)
	// GetByID retrieves a playlist by its ID.
	//
	// If no such playlist exists, repositories.ErrNotFound is returned together with a "nil" value.
	GetByID(ctx context.Context, playlistID int) (*models.Playlist, error)
}

// VideoRepository is the interface that wraps methods for Video table data access
type VideoRepository interface {
	// GetByPlaylist retrieves all videos of one playlist in storage order.
	GetByPlaylist(ctx context.Context, playlistID int) ([]models.Video, error)
	// GetInPlaylist retrieves a video scoped to its playlist. A video
	// belonging to a different playlist is reported as repositories.ErrNotFound.
	GetInPlaylist(ctx context.Context, videoID, playlistID int) (*models.Video, error)
}

// catalogService implements read access to courses and their videos
type catalogService struct {
	playlistRepo PlaylistRepository
	videoRepo    VideoRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(playlistRepo PlaylistRepository, videoRepo VideoRepository) *catalogService {
	return &catalogService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
	}
}

// ListPlaylists retrieves all playlists
func (s *catalogService) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return s.playlistRepo.GetAll(ctx)
}

// ListVideos retrieves the videos of one playlist. The playlist must exist.
func (s *catalogService) ListVideos(ctx context.Context, playlistID int) ([]models.Video, error) {
	if _, err := s.playlistRepo.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}

	return s.videoRepo.GetByPlaylist(ctx, playlistID)
}

// GetVideo retrieves a single video scoped to its playlist
func (s *catalogService) GetVideo(ctx context.Context, playlistID, videoID int) (*models.VideoDetailResponse, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	video, err := s.videoRepo.GetInPlaylist(ctx, videoID, playlistID)
	if err != nil {
		return nil, err
	}

	return &models.VideoDetailResponse{
		PlaylistID:    playlist.ID,
		PlaylistTitle: playlist.Title,
		VideoID:       video.ID,
		VideoTitle:    video.Title,
		Description:   video.Description,
		VideoURL:      video.VideoURL,
		Thumbnail:     video.Thumbnail,
	}, nil
}
