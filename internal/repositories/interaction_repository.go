package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursetube/backend/internal/models"
)

// interactionRepository implements InteractionRepository.
// Likes and saved videos carry a UNIQUE(user_id, video_id) key, so a
// concurrent duplicate insert fails at the database rather than racing a
// check-then-insert in application code.
type interactionRepository struct {
	db *sql.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *sql.DB) *interactionRepository {
	return &interactionRepository{
		db: db,
	}
}

// CreateComment inserts a new comment
func (r *interactionRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (text, user_id, video_id)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, comment.Text, comment.UserID, comment.VideoID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	comment.ID = int(id)
	return nil
}

// CreateLike inserts a like marker for the (user, video) pair
func (r *interactionRepository) CreateLike(ctx context.Context, userID, videoID int) error {
	query := `
		INSERT INTO likes (user_id, video_id)
		VALUES (?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, userID, videoID); err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("like for user %d video %d: %w", userID, videoID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

// CreateSavedVideo inserts a saved-video marker for the (user, video) pair
func (r *interactionRepository) CreateSavedVideo(ctx context.Context, userID, videoID int) error {
	query := `
		INSERT INTO saved_videos (user_id, video_id)
		VALUES (?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, userID, videoID); err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("saved video for user %d video %d: %w", userID, videoID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create saved video: %w", err)
	}

	return nil
}

// CountCommentsByUser counts comments authored by the user
func (r *interactionRepository) CountCommentsByUser(ctx context.Context, userID int) (int, error) {
	return r.countByUser(ctx, "comments", userID)
}

// CountLikesByUser counts likes given by the user
func (r *interactionRepository) CountLikesByUser(ctx context.Context, userID int) (int, error) {
	return r.countByUser(ctx, "likes", userID)
}

// CountSavedByUser counts videos saved by the user
func (r *interactionRepository) CountSavedByUser(ctx context.Context, userID int) (int, error) {
	return r.countByUser(ctx, "saved_videos", userID)
}

// countByUser counts rows of one interaction table filtered by user ID.
// The table name is one of the fixed constants above, never caller input.
func (r *interactionRepository) countByUser(ctx context.Context, table string, userID int) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE user_id = ?", table)

	var count int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	return count, nil
}
