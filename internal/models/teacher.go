package models

// Teacher is a directory entry for a course teacher
type Teacher struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Subject  string `json:"subject"`
	ImageURL string `json:"img_url"`
}

// UpdateTeacherRequest carries a partial teacher update; nil fields keep
// the stored values.
type UpdateTeacherRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
	Subject  *string `json:"subject"`
	ImageURL *string `json:"img_url"`
}
