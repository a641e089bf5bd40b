package models

// Role identifies the kind of account a user registered as.
// It is fixed at registration and never mutated afterwards.
type Role string

// Role constants
const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one of the recognized account kinds
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User represents a user in the system
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"role"`
	ImageURL     string `json:"imgUrl"`
}

// RegisterRequest holds the fields submitted at registration
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"user_type"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
	Role    Role   `json:"role"`
}

// LoginRequest holds login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the session summary returned after a successful login.
// No token is minted; session continuity is managed by the caller.
type LoginResponse struct {
	Message  string `json:"message"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	ImageURL string `json:"imgUrl"`
	Role     Role   `json:"role"`
}

// ProfileResponse is the profile view with derived activity counters
type ProfileResponse struct {
	Username         string `json:"username"`
	Role             Role   `json:"role"`
	ImageURL         string `json:"imgUrl"`
	CommentsCount    int    `json:"comments_count"`
	LikesCount       int    `json:"likes_count"`
	SavedVideosCount int    `json:"saved_videos_count"`
}

// UserInfoResponse is the basic account view served by GET /profile/{id}
type UserInfoResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// UpdateProfileRequest carries a partial profile update. Only non-nil
// fields are applied; absent fields leave the stored values untouched.
// A password change requires the full triple: OldPassword must verify
// against the stored hash before NewPassword replaces it.
type UpdateProfileRequest struct {
	Username           *string `json:"username"`
	Email              *string `json:"email"`
	ImageURL           *string `json:"img_url"`
	OldPassword        *string `json:"old_pass"`
	NewPassword        *string `json:"new_pass"`
	ConfirmNewPassword *string `json:"c_pass"`
}

// ProfileChanges is the set of column updates applied by the user
// repository in a single transaction. Nil fields are not touched.
type ProfileChanges struct {
	Username     *string
	Email        *string
	ImageURL     *string
	PasswordHash *string
}

// Empty reports whether no column would change
func (c *ProfileChanges) Empty() bool {
	return c.Username == nil && c.Email == nil && c.ImageURL == nil && c.PasswordHash == nil
}
