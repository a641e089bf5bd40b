package services

import (
	"context"
	"errors"
	"testing"

	"github.com/coursetube/backend/internal/models"
	"github.com/coursetube/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockProfileUserRepository is a mock implementation of ProfileUserRepository
type mockProfileUserRepository struct {
	user              *models.User
	getByIDErr        error
	existsForOther    bool
	existsForOtherErr error
	updateErr         error
	appliedChanges    *models.ProfileChanges
}

func (m *mockProfileUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	return m.user, nil
}

func (m *mockProfileUserRepository) ExistsByEmailForOther(ctx context.Context, email string, userID int) (bool, error) {
	if m.existsForOtherErr != nil {
		return false, m.existsForOtherErr
	}
	return m.existsForOther, nil
}

func (m *mockProfileUserRepository) UpdateProfile(ctx context.Context, userID int, changes *models.ProfileChanges) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.appliedChanges = changes
	return nil
}

// mockInteractionCounter is a mock implementation of InteractionCounter
type mockInteractionCounter struct {
	comments    int
	commentsErr error
	likes       int
	likesErr    error
	saved       int
	savedErr    error
}

func (m *mockInteractionCounter) CountCommentsByUser(ctx context.Context, userID int) (int, error) {
	return m.comments, m.commentsErr
}

func (m *mockInteractionCounter) CountLikesByUser(ctx context.Context, userID int) (int, error) {
	return m.likes, m.likesErr
}

func (m *mockInteractionCounter) CountSavedByUser(ctx context.Context, userID int) (int, error) {
	return m.saved, m.savedErr
}

func strPtr(s string) *string {
	return &s
}

func TestProfileService_GetProfile(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		userRepo      *mockProfileUserRepository
		counters      *mockInteractionCounter
		expectedError bool
		expectedIs    error
		expected      *models.ProfileResponse
	}{
		{
			name:   "success",
			userID: 1,
			userRepo: &mockProfileUserRepository{
				user: &models.User{
					ID:       1,
					Username: "testuser",
					Role:     models.RoleStudent,
					ImageURL: "/static/uploads/avatar.png",
				},
			},
			counters: &mockInteractionCounter{
				comments: 3,
				likes:    5,
				saved:    2,
			},
			expectedError: false,
			expected: &models.ProfileResponse{
				Username:         "testuser",
				Role:             models.RoleStudent,
				ImageURL:         "/static/uploads/avatar.png",
				CommentsCount:    3,
				LikesCount:       5,
				SavedVideosCount: 2,
			},
		},
		{
			name:   "zero counters",
			userID: 1,
			userRepo: &mockProfileUserRepository{
				user: &models.User{
					ID:       1,
					Username: "testuser",
					Role:     models.RoleTeacher,
				},
			},
			counters:      &mockInteractionCounter{},
			expectedError: false,
			expected: &models.ProfileResponse{
				Username: "testuser",
				Role:     models.RoleTeacher,
			},
		},
		{
			name:          "missing user id",
			userID:        0,
			userRepo:      &mockProfileUserRepository{},
			counters:      &mockInteractionCounter{},
			expectedError: true,
			expectedIs:    ErrValidation,
		},
		{
			name:   "user not found",
			userID: 999,
			userRepo: &mockProfileUserRepository{
				getByIDErr: repositories.ErrNotFound,
			},
			counters:      &mockInteractionCounter{},
			expectedError: true,
			expectedIs:    repositories.ErrNotFound,
		},
		{
			name:   "counter error",
			userID: 1,
			userRepo: &mockProfileUserRepository{
				user: &models.User{ID: 1, Username: "testuser", Role: models.RoleStudent},
			},
			counters: &mockInteractionCounter{
				likesErr: errors.New("database error"),
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProfileService(tt.userRepo, tt.counters)

			resp, err := svc.GetProfile(context.Background(), tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, resp)
				if tt.expectedIs != nil {
					assert.ErrorIs(t, err, tt.expectedIs)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, resp)
			}
		})
	}
}

func TestProfileService_GetUserInfo(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		userRepo      *mockProfileUserRepository
		expectedError bool
		expected      *models.UserInfoResponse
	}{
		{
			name:   "success",
			userID: 1,
			userRepo: &mockProfileUserRepository{
				user: &models.User{
					ID:       1,
					Username: "testuser",
					Email:    "test@example.com",
					Role:     models.RoleStudent,
				},
			},
			expectedError: false,
			expected: &models.UserInfoResponse{
				Username: "testuser",
				Email:    "test@example.com",
				Role:     models.RoleStudent,
			},
		},
		{
			name:   "user not found",
			userID: 999,
			userRepo: &mockProfileUserRepository{
				getByIDErr: repositories.ErrNotFound,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProfileService(tt.userRepo, &mockInteractionCounter{})

			resp, err := svc.GetUserInfo(context.Background(), tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, resp)
			}
		})
	}
}

func TestProfileService_UpdateProfile(t *testing.T) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	require.NoError(t, err)

	currentUser := func() *models.User {
		return &models.User{
			ID:           1,
			Username:     "testuser",
			Email:        "test@example.com",
			PasswordHash: string(passwordHash),
			Role:         models.RoleStudent,
		}
	}

	tests := []struct {
		name          string
		req           *models.UpdateProfileRequest
		userRepo      *mockProfileUserRepository
		expectedError bool
		expectedIs    error
		errorContains string
		checkChanges  func(t *testing.T, changes *models.ProfileChanges)
	}{
		{
			name: "username only",
			req: &models.UpdateProfileRequest{
				Username: strPtr("newname"),
			},
			userRepo:      &mockProfileUserRepository{user: currentUser()},
			expectedError: false,
			checkChanges: func(t *testing.T, changes *models.ProfileChanges) {
				require.NotNil(t, changes.Username)
				assert.Equal(t, "newname", *changes.Username)
				assert.Nil(t, changes.Email)
				assert.Nil(t, changes.ImageURL)
				assert.Nil(t, changes.PasswordHash)
			},
		},
		{
			name: "email is normalized",
			req: &models.UpdateProfileRequest{
				Email: strPtr("  New@Example.COM "),
			},
			userRepo:      &mockProfileUserRepository{user: currentUser()},
			expectedError: false,
			checkChanges: func(t *testing.T, changes *models.ProfileChanges) {
				require.NotNil(t, changes.Email)
				assert.Equal(t, "new@example.com", *changes.Email)
			},
		},
		{
			name: "password change with correct old password",
			req: &models.UpdateProfileRequest{
				OldPassword:        strPtr("oldpassword"),
				NewPassword:        strPtr("newpassword"),
				ConfirmNewPassword: strPtr("newpassword"),
			},
			userRepo:      &mockProfileUserRepository{user: currentUser()},
			expectedError: false,
			checkChanges: func(t *testing.T, changes *models.ProfileChanges) {
				require.NotNil(t, changes.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(*changes.PasswordHash), []byte("newpassword")))
			},
		},
		{
			name: "blank username rejected",
			req: &models.UpdateProfileRequest{
				Username: strPtr("   "),
			},
			userRepo:      &mockProfileUserRepository{user: currentUser()},
			expectedError: true,
			expectedIs:    ErrValidation,
			errorContains: "username cannot be empty",
		},
		{
			name: "invalid email rejected",
			req: &models.UpdateProfileRequest{
				Email: strPtr("not-an-email"),
			},
			userRepo:      &mockProfileUserRepository{user: currentUser()},
			expectedError: true,
			expectedIs:    ErrValidation,
			errorContains: "invalid email format",
		},
		{
			name: "email taken by another user",
			req: &models.UpdateProfileRequest{
				Email: strPtr("taken@example.com"),
			},
			userRepo: &mockProfileUserRepository{
				user:           currentUser(),
				existsForOther: true,
			},
			expectedError: true,
			expectedIs:    repositories.ErrDuplicate,
		},
		{
			name: "wrong old password leaves everything untouched",
			req: &models.UpdateProfileRequest{
				OldPassword:        strPtr("wrongpassword"),
				NewPassword:        strPtr("newpassword"),
				ConfirmNewPassword: strPtr("newpassword"),
			},
			userRepo:      &mockProfileUserRepository{user: currentUser()},
			expectedError: true,
			expectedIs:    ErrValidation,
			errorContains: "old password is incorrect",
		},
		{
			name: "new password missing",
			req: &models.UpdateProfileRequest{
				OldPassword: strPtr("oldpassword"),
			},
			userRepo:      &mockProfileUserRepository{user: currentUser()},
			expectedError: true,
			expectedIs:    ErrValidation,
			errorContains: "new password is required",
		},
		{
			name: "new password confirmation mismatch",
			req: &models.UpdateProfileRequest{
				OldPassword:        strPtr("oldpassword"),
				NewPassword:        strPtr("newpassword"),
				ConfirmNewPassword: strPtr("different"),
			},
			userRepo:      &mockProfileUserRepository{user: currentUser()},
			expectedError: true,
			expectedIs:    ErrValidation,
			errorContains: "do not match",
		},
		{
			name:          "empty request",
			req:           &models.UpdateProfileRequest{},
			userRepo:      &mockProfileUserRepository{user: currentUser()},
			expectedError: true,
			expectedIs:    ErrValidation,
			errorContains: "no fields to update",
		},
		{
			name: "user not found",
			req: &models.UpdateProfileRequest{
				Username: strPtr("newname"),
			},
			userRepo: &mockProfileUserRepository{
				getByIDErr: repositories.ErrNotFound,
			},
			expectedError: true,
			expectedIs:    repositories.ErrNotFound,
		},
		{
			name: "repository update error",
			req: &models.UpdateProfileRequest{
				Username: strPtr("newname"),
			},
			userRepo: &mockProfileUserRepository{
				user:      currentUser(),
				updateErr: errors.New("database error"),
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProfileService(tt.userRepo, &mockInteractionCounter{})

			user, err := svc.UpdateProfile(context.Background(), 1, tt.req)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.Nil(t, tt.userRepo.appliedChanges)
				if tt.expectedIs != nil {
					assert.ErrorIs(t, err, tt.expectedIs)
				}
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				require.NotNil(t, tt.userRepo.appliedChanges)
				if tt.checkChanges != nil {
					tt.checkChanges(t, tt.userRepo.appliedChanges)
				}
			}
		})
	}
}
