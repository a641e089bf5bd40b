package models

// UserSearchResult is a lightweight projection of a matched user row
type UserSearchResult struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"img_url"`
}

// VideoSearchResult is a lightweight projection of a matched video row
type VideoSearchResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// PlaylistSearchResult is a lightweight projection of a matched playlist row
type PlaylistSearchResult struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// SearchResponse combines results across all searchable entities.
// Each slice keeps the underlying storage order; empty slices are success.
type SearchResponse struct {
	Users     []UserSearchResult     `json:"users"`
	Videos    []VideoSearchResult    `json:"videos"`
	Playlists []PlaylistSearchResult `json:"playlists"`
}
