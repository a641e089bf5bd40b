package services

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/coursetube/backend/internal/models"
	"github.com/coursetube/backend/internal/repositories"
	"github.com/coursetube/backend/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database and fills in the
	// generated ID. A unique key violation on email is reported as
	// repositories.ErrDuplicate.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by email.
	//
	// If no user holds the email, repositories.ErrNotFound is returned together with a "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// If some error occurs during the check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ImageStore is the interface that wraps local image storage operations
// shared by the services that accept uploads.
type ImageStore interface {
	// Save writes the reader's content under the given filename and
	// returns the number of bytes written.
	Save(filename string, r io.Reader) (int64, error)
	// Delete removes a stored file.
	Delete(filename string) error
}

// authService implements credential management: registration and login.
// Passwords are stored only as bcrypt hashes; there is exactly one hashing
// policy in the system.
type authService struct {
	userRepo UserRepository
	images   ImageStore
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, images ImageStore, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		images:   images,
		logger:   logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Register creates a new user account. The optional image is written to
// local storage before the row insert; a failed insert removes the file so
// no orphaned reference survives.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest, image io.Reader, imageFilename string) (*models.RegisterResponse, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(req.Email))
	normalizedUsername := strings.TrimSpace(req.Username)

	if normalizedUsername == "" || normalizedEmail == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if !emailRegex.MatchString(normalizedEmail) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	// Default to student when the caller does not specify a role
	role := models.Role(strings.TrimSpace(req.Role))
	if role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid user type", ErrValidation)
	}

	emailExists, err := s.userRepo.ExistsByEmail(ctx, normalizedEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return nil, fmt.Errorf("user already exists: %w", repositories.ErrDuplicate)
	}

	// Store the image before the row insert so the reference written to
	// the database always points at an existing file
	var imageRef, storedName string
	if image != nil {
		storedName = storage.GenerateImageName(normalizedUsername, imageFilename)
		if _, err := s.images.Save(storedName, image); err != nil {
			return nil, fmt.Errorf("failed to store profile image: %w", err)
		}
		imageRef = storage.URLPrefix + storedName
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     normalizedUsername,
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		Role:         role,
		ImageURL:     imageRef,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Roll back the stored file so the failed registration leaves nothing behind
		if storedName != "" {
			if delErr := s.images.Delete(storedName); delErr != nil {
				s.logger.Warn("failed to remove image after failed registration",
					zap.String("filename", storedName), zap.Error(delErr))
			}
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.Int("user_id", user.ID), zap.String("role", string(role)))

	return &models.RegisterResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
		Role:    user.Role,
	}, nil
}

// Login authenticates a user and returns the session summary. No token is
// minted; the caller keeps track of the returned identity.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.LoginResponse{
		Message:  fmt.Sprintf("Welcome, %s!", user.Username),
		UserID:   user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		Role:     user.Role,
	}, nil
}
