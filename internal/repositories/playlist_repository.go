package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursetube/backend/internal/models"
)

// playlistRepository implements PlaylistRepository
type playlistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new playlist repository
func NewPlaylistRepository(db *sql.DB) *playlistRepository {
	return &playlistRepository{
		db: db,
	}
}

// GetAll retrieves all playlists in storage order
func (r *playlistRepository) GetAll(ctx context.Context) ([]models.Playlist, error) {
	query := `
		SELECT id, title
		FROM playlists
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var p models.Playlist
		if err := rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return playlists, nil
}

// GetByID retrieves a playlist by its ID
func (r *playlistRepository) GetByID(ctx context.Context, playlistID int) (*models.Playlist, error) {
	query := `
		SELECT id, title
		FROM playlists
		WHERE id = ?
		LIMIT 1
	`

	var playlist models.Playlist
	err := r.db.QueryRowContext(ctx, query, playlistID).Scan(&playlist.ID, &playlist.Title)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("playlist %d: %w", playlistID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}

	return &playlist, nil
}
