package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/coursetube/backend/internal/models"
)

// searchRepository implements SearchRepository with case-insensitive
// substring matching. Every projection field is bound to the matched
// row's values, in storage order.
type searchRepository struct {
	db *sql.DB
}

// NewSearchRepository creates a new search repository
func NewSearchRepository(db *sql.DB) *searchRepository {
	return &searchRepository{
		db: db,
	}
}

// likePattern builds a case-insensitive LIKE pattern for a substring match.
// LIKE wildcards in the query text are escaped so they match literally.
func likePattern(query string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
	return "%" + strings.ToLower(escaped) + "%"
}

// SearchUsers matches users whose username OR email contains the query
func (r *searchRepository) SearchUsers(ctx context.Context, query string) ([]models.UserSearchResult, error) {
	stmt := `
		SELECT id, username, email, image_url
		FROM users
		WHERE LOWER(username) LIKE ? OR LOWER(email) LIKE ?
		ORDER BY id
	`

	pattern := likePattern(query)
	rows, err := r.db.QueryContext(ctx, stmt, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	results := []models.UserSearchResult{}
	for rows.Next() {
		var u models.UserSearchResult
		var imageURL sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &imageURL); err != nil {
			return nil, fmt.Errorf("failed to scan user result: %w", err)
		}
		u.ImageURL = imageURL.String
		results = append(results, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

// SearchPlaylists matches playlists whose title contains the query
func (r *searchRepository) SearchPlaylists(ctx context.Context, query string) ([]models.PlaylistSearchResult, error) {
	stmt := `
		SELECT id, title
		FROM playlists
		WHERE LOWER(title) LIKE ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, stmt, likePattern(query))
	if err != nil {
		return nil, fmt.Errorf("failed to search playlists: %w", err)
	}
	defer rows.Close()

	results := []models.PlaylistSearchResult{}
	for rows.Next() {
		var p models.PlaylistSearchResult
		if err := rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("failed to scan playlist result: %w", err)
		}
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

// SearchVideos matches videos whose title AND description AND url all
// contain the query. The conjunction is deliberate: a video matches only
// when the term appears in every descriptive field.
func (r *searchRepository) SearchVideos(ctx context.Context, query string) ([]models.VideoSearchResult, error) {
	stmt := `
		SELECT id, title, description, video_url
		FROM videos
		WHERE LOWER(title) LIKE ? AND LOWER(description) LIKE ? AND LOWER(video_url) LIKE ?
		ORDER BY id
	`

	pattern := likePattern(query)
	rows, err := r.db.QueryContext(ctx, stmt, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	defer rows.Close()

	results := []models.VideoSearchResult{}
	for rows.Next() {
		var v models.VideoSearchResult
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.URL); err != nil {
			return nil, fmt.Errorf("failed to scan video result: %w", err)
		}
		results = append(results, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}
