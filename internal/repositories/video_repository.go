package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursetube/backend/internal/models"
)

// videoRepository implements VideoRepository
type videoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *sql.DB) *videoRepository {
	return &videoRepository{
		db: db,
	}
}

// GetByPlaylist retrieves all videos of one playlist in storage order
func (r *videoRepository) GetByPlaylist(ctx context.Context, playlistID int) ([]models.Video, error) {
	query := `
		SELECT id, title, description, thumbnail, video_url, playlist_id
		FROM videos
		WHERE playlist_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	var videos []models.Video
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Thumbnail, &v.VideoURL, &v.PlaylistID); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return videos, nil
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(ctx context.Context, videoID int) (*models.Video, error) {
	query := `
		SELECT id, title, description, thumbnail, video_url, playlist_id
		FROM videos
		WHERE id = ?
		LIMIT 1
	`

	var v models.Video
	err := r.db.QueryRowContext(ctx, query, videoID).Scan(
		&v.ID, &v.Title, &v.Description, &v.Thumbnail, &v.VideoURL, &v.PlaylistID,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("video %d: %w", videoID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return &v, nil
}

// GetInPlaylist retrieves a video scoped to its playlist. A video that exists
// but belongs to a different playlist is reported as not found.
func (r *videoRepository) GetInPlaylist(ctx context.Context, videoID, playlistID int) (*models.Video, error) {
	query := `
		SELECT id, title, description, thumbnail, video_url, playlist_id
		FROM videos
		WHERE id = ? AND playlist_id = ?
		LIMIT 1
	`

	var v models.Video
	err := r.db.QueryRowContext(ctx, query, videoID, playlistID).Scan(
		&v.ID, &v.Title, &v.Description, &v.Thumbnail, &v.VideoURL, &v.PlaylistID,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("video %d in playlist %d: %w", videoID, playlistID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video in playlist: %w", err)
	}

	return &v, nil
}
