package models

// Playlist is a named grouping of videos (a course). Read-only in this service.
type Playlist struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Video belongs to exactly one playlist
type Video struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	VideoURL    string `json:"video_url"`
	PlaylistID  int    `json:"playlist_id"`
}

// VideoDetailResponse is a single video scoped to its playlist
type VideoDetailResponse struct {
	PlaylistID    int    `json:"playlist_id"`
	PlaylistTitle string `json:"playlist_title"`
	VideoID       int    `json:"video_id"`
	VideoTitle    string `json:"video_title"`
	Description   string `json:"description"`
	VideoURL      string `json:"video_url"`
	Thumbnail     string `json:"thumbnail"`
}
