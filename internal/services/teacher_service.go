package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/coursetube/backend/internal/models"
	"github.com/coursetube/backend/internal/repositories"
	"github.com/coursetube/backend/internal/storage"
	"go.uber.org/zap"
)

// TeacherRepository is the interface that wraps methods for Teacher table data access
type TeacherRepository interface {
	// Create inserts a new teacher and fills in the generated ID. A unique
	// key violation on email is reported as repositories.ErrDuplicate.
	Create(ctx context.Context, teacher *models.Teacher) error
	// GetAll retrieves all teachers in storage order.
	GetAll(ctx context.Context) ([]models.Teacher, error)
	// GetByID retrieves a teacher by ID.
	//
	// If no such teacher exists, repositories.ErrNotFound is returned together with a "nil" value.
	GetByID(ctx context.Context, teacherID int) (*models.Teacher, error)
	// ExistsByEmail checks if a teacher with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Update applies the given partial changes; nil fields are not touched.
	Update(ctx context.Context, teacherID int, changes *models.UpdateTeacherRequest) error
	// Delete removes a teacher record. A missing row is reported as
	// repositories.ErrNotFound.
	Delete(ctx context.Context, teacherID int) error
}

// teacherService implements the teacher directory CRUD
type teacherService struct {
	repo   TeacherRepository
	images ImageStore
	logger *zap.Logger
}

// NewTeacherService creates a new teacher service
func NewTeacherService(repo TeacherRepository, images ImageStore, logger *zap.Logger) *teacherService {
	return &teacherService{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

// Create registers a new teacher. The optional image follows the same
// store-then-insert, delete-on-failure discipline as user registration.
func (s *teacherService) Create(ctx context.Context, name, email, bio, subject string, image io.Reader, imageFilename string) (*models.Teacher, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	emailExists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return nil, fmt.Errorf("email already exists: %w", repositories.ErrDuplicate)
	}

	var imageRef, storedName string
	if image != nil {
		storedName = storage.GenerateImageName("teacher_"+email, imageFilename)
		if _, err := s.images.Save(storedName, image); err != nil {
			return nil, fmt.Errorf("failed to store teacher image: %w", err)
		}
		imageRef = storage.URLPrefix + storedName
	}

	teacher := &models.Teacher{
		Name:     name,
		Email:    email,
		Bio:      bio,
		Subject:  subject,
		ImageURL: imageRef,
	}

	if err := s.repo.Create(ctx, teacher); err != nil {
		if storedName != "" {
			if delErr := s.images.Delete(storedName); delErr != nil {
				s.logger.Warn("failed to remove image after failed teacher create",
					zap.String("filename", storedName), zap.Error(delErr))
			}
		}
		return nil, err
	}

	return teacher, nil
}

// List retrieves all teachers
func (s *teacherService) List(ctx context.Context) ([]models.Teacher, error) {
	return s.repo.GetAll(ctx)
}

// Get retrieves a teacher by ID
func (s *teacherService) Get(ctx context.Context, teacherID int) (*models.Teacher, error) {
	return s.repo.GetByID(ctx, teacherID)
}

// Update applies a partial update to a teacher record. When a new image is
// provided it replaces the old file; the old file is removed only after
// the row update succeeds.
func (s *teacherService) Update(ctx context.Context, teacherID int, changes *models.UpdateTeacherRequest, image io.Reader, imageFilename string) (*models.Teacher, error) {
	current, err := s.repo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	if changes.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*changes.Email))
		if !emailRegex.MatchString(email) {
			return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
		}
		changes.Email = &email
	}

	var storedName string
	if image != nil {
		storedName = storage.GenerateImageName("teacher_"+current.Email, imageFilename)
		if _, err := s.images.Save(storedName, image); err != nil {
			return nil, fmt.Errorf("failed to store teacher image: %w", err)
		}
		imageRef := storage.URLPrefix + storedName
		changes.ImageURL = &imageRef
	}

	if err := s.repo.Update(ctx, teacherID, changes); err != nil {
		if storedName != "" {
			if delErr := s.images.Delete(storedName); delErr != nil {
				s.logger.Warn("failed to remove image after failed teacher update",
					zap.String("filename", storedName), zap.Error(delErr))
			}
		}
		return nil, err
	}

	// The old image is unreferenced now; removal is best effort
	if storedName != "" && current.ImageURL != "" {
		if delErr := s.images.Delete(imageFilenameFromRef(current.ImageURL)); delErr != nil {
			s.logger.Warn("failed to remove replaced teacher image",
				zap.String("reference", current.ImageURL), zap.Error(delErr))
		}
	}

	return s.repo.GetByID(ctx, teacherID)
}

// Delete removes a teacher and, best effort, its stored image
func (s *teacherService) Delete(ctx context.Context, teacherID int) error {
	teacher, err := s.repo.GetByID(ctx, teacherID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, teacherID); err != nil {
		return err
	}

	if teacher.ImageURL != "" {
		if delErr := s.images.Delete(imageFilenameFromRef(teacher.ImageURL)); delErr != nil {
			s.logger.Warn("failed to remove image of deleted teacher",
				zap.String("reference", teacher.ImageURL), zap.Error(delErr))
		}
	}

	return nil
}

// imageFilenameFromRef extracts the stored filename from a persisted
// image reference
func imageFilenameFromRef(ref string) string {
	return strings.TrimPrefix(ref, storage.URLPrefix)
}
