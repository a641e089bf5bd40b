package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursetube/backend/internal/models"
	"github.com/coursetube/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// ProfileUserRepository is the interface that wraps methods for User table data access needed by profile service
type ProfileUserRepository interface {
	// GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, repositories.ErrNotFound is returned together with a "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// ExistsByEmailForOther checks if a different user already holds the given email.
	ExistsByEmailForOther(ctx context.Context, email string, userID int) (bool, error)
	// UpdateProfile applies the given column changes in one transaction:
	// either every change commits or none of them do.
	UpdateProfile(ctx context.Context, userID int, changes *models.ProfileChanges) error
}

// InteractionCounter is the interface that wraps the per-user activity counters
type InteractionCounter interface {
	CountCommentsByUser(ctx context.Context, userID int) (int, error)
	CountLikesByUser(ctx context.Context, userID int) (int, error)
	CountSavedByUser(ctx context.Context, userID int) (int, error)
}

// profileService implements profile reads and partial updates
type profileService struct {
	userRepo ProfileUserRepository
	counters InteractionCounter
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo ProfileUserRepository, counters InteractionCounter) *profileService {
	return &profileService{
		userRepo: userRepo,
		counters: counters,
	}
}

// GetProfile retrieves the profile view with derived activity counters.
// The counters are recomputed on every call, never cached.
//
// The three counts are independent, so they are gathered in parallel.
func (s *profileService) GetProfile(ctx context.Context, userID int) (*models.ProfileResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var commentsCount, likesCount, savedCount int
	errorChan := make(chan error, 3)

	go func() {
		var err error
		commentsCount, err = s.counters.CountCommentsByUser(ctx, userID)
		errorChan <- err
	}()
	go func() {
		var err error
		likesCount, err = s.counters.CountLikesByUser(ctx, userID)
		errorChan <- err
	}()
	go func() {
		var err error
		savedCount, err = s.counters.CountSavedByUser(ctx, userID)
		errorChan <- err
	}()

	for i := 0; i < 3; i++ {
		if err := <-errorChan; err != nil {
			return nil, fmt.Errorf("failed to count user activity: %w", err)
		}
	}

	return &models.ProfileResponse{
		Username:         user.Username,
		Role:             user.Role,
		ImageURL:         user.ImageURL,
		CommentsCount:    commentsCount,
		LikesCount:       likesCount,
		SavedVideosCount: savedCount,
	}, nil
}

// GetUserInfo retrieves the basic account view
func (s *profileService) GetUserInfo(ctx context.Context, userID int) (*models.UserInfoResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.UserInfoResponse{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// UpdateProfile applies a partial update: only fields present in the
// request are mutated. A password change requires the old password to
// verify before the new hash replaces the stored one. All accepted changes
// commit in one transaction.
func (s *profileService) UpdateProfile(ctx context.Context, userID int, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changes := &models.ProfileChanges{}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", ErrValidation)
		}
		changes.Username = &username
	}

	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if !emailRegex.MatchString(email) {
			return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
		}
		// Email uniqueness is enforced on update the same way it is at
		// registration; the row's own email is excluded from the check.
		emailExists, err := s.userRepo.ExistsByEmailForOther(ctx, email, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if emailExists {
			return nil, fmt.Errorf("email already registered: %w", repositories.ErrDuplicate)
		}
		changes.Email = &email
	}

	if req.ImageURL != nil {
		changes.ImageURL = req.ImageURL
	}

	if req.OldPassword != nil && *req.OldPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*req.OldPassword)); err != nil {
			return nil, fmt.Errorf("%w: old password is incorrect", ErrValidation)
		}
		if req.NewPassword == nil || *req.NewPassword == "" {
			return nil, fmt.Errorf("%w: new password is required", ErrValidation)
		}
		if req.ConfirmNewPassword == nil || *req.NewPassword != *req.ConfirmNewPassword {
			return nil, fmt.Errorf("%w: new password and confirm password do not match", ErrValidation)
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hash := string(passwordHash)
		changes.PasswordHash = &hash
	}

	if changes.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, changes); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}
