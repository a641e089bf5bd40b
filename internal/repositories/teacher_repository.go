package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/coursetube/backend/internal/models"
)

// teacherRepository implements TeacherRepository
type teacherRepository struct {
	db *sql.DB
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *sql.DB) *teacherRepository {
	return &teacherRepository{
		db: db,
	}
}

// Create inserts a new teacher into the database
func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (name, email, bio, subject, image_url)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, teacher.Name, teacher.Email, teacher.Bio, teacher.Subject, teacher.ImageURL)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("email %s: %w", teacher.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create teacher: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	teacher.ID = int(id)
	return nil
}

// GetAll retrieves all teachers in storage order
func (r *teacherRepository) GetAll(ctx context.Context) ([]models.Teacher, error) {
	query := `
		SELECT id, name, email, bio, subject, image_url
		FROM teachers
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teachers: %w", err)
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		var t models.Teacher
		var imageURL sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Bio, &t.Subject, &imageURL); err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		t.ImageURL = imageURL.String
		teachers = append(teachers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return teachers, nil
}

// GetByID retrieves a teacher by ID
func (r *teacherRepository) GetByID(ctx context.Context, teacherID int) (*models.Teacher, error) {
	query := `
		SELECT id, name, email, bio, subject, image_url
		FROM teachers
		WHERE id = ?
		LIMIT 1
	`

	var t models.Teacher
	var imageURL sql.NullString
	err := r.db.QueryRowContext(ctx, query, teacherID).Scan(
		&t.ID, &t.Name, &t.Email, &t.Bio, &t.Subject, &imageURL,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("teacher %d: %w", teacherID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}

	t.ImageURL = imageURL.String
	return &t, nil
}

// ExistsByEmail checks if a teacher exists with the given email
func (r *teacherRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM teachers WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check teacher email existence: %w", err)
	}

	return exists, nil
}

// Update applies the given partial changes to one teacher. Nil fields are
// not touched.
func (r *teacherRepository) Update(ctx context.Context, teacherID int, changes *models.UpdateTeacherRequest) error {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if changes.Name != nil {
		setParts = append(setParts, "name = ?")
		args = append(args, *changes.Name)
	}
	if changes.Email != nil {
		setParts = append(setParts, "email = ?")
		args = append(args, *changes.Email)
	}
	if changes.Bio != nil {
		setParts = append(setParts, "bio = ?")
		args = append(args, *changes.Bio)
	}
	if changes.Subject != nil {
		setParts = append(setParts, "subject = ?")
		args = append(args, *changes.Subject)
	}
	if changes.ImageURL != nil {
		setParts = append(setParts, "image_url = ?")
		args = append(args, *changes.ImageURL)
	}
	if len(setParts) == 0 {
		return nil
	}
	args = append(args, teacherID)

	query := fmt.Sprintf("UPDATE teachers SET %s WHERE id = ?", strings.Join(setParts, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("email already registered: %w", ErrDuplicate)
		}
		return fmt.Errorf("failed to update teacher: %w", err)
	}

	return nil
}

// Delete removes a teacher record
func (r *teacherRepository) Delete(ctx context.Context, teacherID int) error {
	query := `DELETE FROM teachers WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, teacherID)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("teacher %d: %w", teacherID, ErrNotFound)
	}

	return nil
}
