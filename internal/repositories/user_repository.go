package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/coursetube/backend/internal/models"
)

// userRepository implements the user repository interfaces declared in the services package
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, role, image_url)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash, user.Role, user.ImageURL)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("email %s: %w", user.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, image_url
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	user := &models.User{}
	var imageURL sql.NullString
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&imageURL,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	user.ImageURL = imageURL.String
	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, image_url
		FROM users
		WHERE id = ?
		LIMIT 1
	`

	user := &models.User{}
	var imageURL sql.NullString
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&imageURL,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	user.ImageURL = imageURL.String
	return user, nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// ExistsByEmailForOther checks if a different user already holds the given email
func (r *userRepository) ExistsByEmailForOther(ctx context.Context, email string, userID int) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE email = ? AND id != ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// UpdateProfile applies the given column changes to one user inside a single
// transaction. Either every change commits together or none of them do.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int, changes *models.ProfileChanges) error {
	if changes.Empty() {
		return nil
	}

	setParts := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if changes.Username != nil {
		setParts = append(setParts, "username = ?")
		args = append(args, *changes.Username)
	}
	if changes.Email != nil {
		setParts = append(setParts, "email = ?")
		args = append(args, *changes.Email)
	}
	if changes.ImageURL != nil {
		setParts = append(setParts, "image_url = ?")
		args = append(args, *changes.ImageURL)
	}
	if changes.PasswordHash != nil {
		setParts = append(setParts, "password_hash = ?")
		args = append(args, *changes.PasswordHash)
	}
	args = append(args, userID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(setParts, ", "))
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("email already registered: %w", ErrDuplicate)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit profile update: %w", err)
	}

	return nil
}
