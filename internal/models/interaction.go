package models

// Comment is a user's comment on a video. Comments are append-only.
type Comment struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	UserID  int    `json:"user_id"`
	VideoID int    `json:"video_id"`
}

// CommentRequest is the body of POST .../comment
type CommentRequest struct {
	UserID int    `json:"user_id"`
	Text   string `json:"text"`
}

// InteractionRequest is the body of POST .../like and POST .../save
type InteractionRequest struct {
	UserID int `json:"user_id"`
}
