package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursetube/backend/internal/models"
)

// SearchRepository is the interface that wraps substring matching across
// the searchable tables. Every result field is bound to the matched row's
// own values.
type SearchRepository interface {
	// SearchUsers matches users whose username OR email contains the query.
	SearchUsers(ctx context.Context, query string) ([]models.UserSearchResult, error)
	// SearchPlaylists matches playlists whose title contains the query.
	SearchPlaylists(ctx context.Context, query string) ([]models.PlaylistSearchResult, error)
	// SearchVideos matches videos whose title AND description AND url all
	// contain the query.
	SearchVideos(ctx context.Context, query string) ([]models.VideoSearchResult, error)
}

// searchService implements multi-entity search
type searchService struct {
	repo SearchRepository
}

// NewSearchService creates a new search service
func NewSearchService(repo SearchRepository) *searchService {
	return &searchService{
		repo: repo,
	}
}

// Search runs the query against users, playlists and videos. A blank query
// is a validation error; an empty result set is not.
//
// The three lookups are independent, so they run in parallel.
func (s *searchService) Search(ctx context.Context, query string) (*models.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", ErrValidation)
	}

	response := &models.SearchResponse{}
	errorChan := make(chan error, 3)

	go func() {
		var err error
		response.Users, err = s.repo.SearchUsers(ctx, query)
		errorChan <- err
	}()
	go func() {
		var err error
		response.Playlists, err = s.repo.SearchPlaylists(ctx, query)
		errorChan <- err
	}()
	go func() {
		var err error
		response.Videos, err = s.repo.SearchVideos(ctx, query)
		errorChan <- err
	}()

	for i := 0; i < 3; i++ {
		if err := <-errorChan; err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}
	}

	return response, nil
}
