package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursetube/backend/internal/models"
	"go.uber.org/zap"
)

// InteractionPlaylistRepository is the subset of playlist access needed for precondition checks
type InteractionPlaylistRepository interface {
	GetByID(ctx context.Context, playlistID int) (*models.Playlist, error)
}

// InteractionVideoRepository is the subset of video access needed for precondition checks
type InteractionVideoRepository interface {
	GetByID(ctx context.Context, videoID int) (*models.Video, error)
}

// InteractionRepository is the interface that wraps writes to the interaction tables
type InteractionRepository interface {
	// CreateComment inserts a new comment and fills in the generated ID.
	CreateComment(ctx context.Context, comment *models.Comment) error
	// CreateLike inserts a like marker. A duplicate (user, video) pair is
	// reported as repositories.ErrDuplicate, enforced by the unique key so
	// two concurrent likes cannot both succeed.
	CreateLike(ctx context.Context, userID, videoID int) error
	// CreateSavedVideo inserts a saved-video marker with the same
	// uniqueness discipline as CreateLike.
	CreateSavedVideo(ctx context.Context, userID, videoID int) error
}

// interactionService implements comments, likes and saved videos
type interactionService struct {
	playlistRepo    InteractionPlaylistRepository
	videoRepo       InteractionVideoRepository
	interactionRepo InteractionRepository
	logger          *zap.Logger
}

// NewInteractionService creates a new interaction service
func NewInteractionService(
	playlistRepo InteractionPlaylistRepository,
	videoRepo InteractionVideoRepository,
	interactionRepo InteractionRepository,
	logger *zap.Logger,
) *interactionService {
	return &interactionService{
		playlistRepo:    playlistRepo,
		videoRepo:       videoRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
	}
}

// AddComment persists a comment on a video after checking that the
// playlist, the user id and the video are all present
func (s *interactionService) AddComment(ctx context.Context, playlistID, videoID, userID int, text string) (*models.Comment, error) {
	if err := s.checkVideoPreconditions(ctx, playlistID, videoID, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrValidation)
	}

	comment := &models.Comment{
		Text:    text,
		UserID:  userID,
		VideoID: videoID,
	}
	if err := s.interactionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// LikeVideo records a like for the (user, video) pair. Liking the same
// video twice is a conflict, not a silent no-op.
func (s *interactionService) LikeVideo(ctx context.Context, playlistID, videoID, userID int) error {
	if err := s.checkVideoPreconditions(ctx, playlistID, videoID, userID); err != nil {
		return err
	}

	if err := s.interactionRepo.CreateLike(ctx, userID, videoID); err != nil {
		return err
	}

	s.logger.Info("video liked", zap.Int("user_id", userID), zap.Int("video_id", videoID))
	return nil
}

// SaveVideo records a saved-video marker for the (user, video) pair
func (s *interactionService) SaveVideo(ctx context.Context, videoID, userID int) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user ID is required", ErrValidation)
	}
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return err
	}

	if err := s.interactionRepo.CreateSavedVideo(ctx, userID, videoID); err != nil {
		return err
	}

	s.logger.Info("video saved", zap.Int("user_id", userID), zap.Int("video_id", videoID))
	return nil
}

// checkVideoPreconditions verifies the playlist exists, the user id is
// present and the video exists
func (s *interactionService) checkVideoPreconditions(ctx context.Context, playlistID, videoID, userID int) error {
	if _, err := s.playlistRepo.GetByID(ctx, playlistID); err != nil {
		return err
	}
	if userID <= 0 {
		return fmt.Errorf("%w: user ID is required", ErrValidation)
	}
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return err
	}
	return nil
}
