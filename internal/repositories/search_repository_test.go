package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coursetube/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSearchTestRepository creates a search repository with a mock database
func setupSearchTestRepository(t *testing.T) (*searchRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewSearchRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "plain term",
			query:    "golang",
			expected: "%golang%",
		},
		{
			name:     "uppercase is lowered",
			query:    "GoLang",
			expected: "%golang%",
		},
		{
			name:     "percent is escaped",
			query:    "100%",
			expected: `%100\%%`,
		},
		{
			name:     "underscore is escaped",
			query:    "my_file",
			expected: `%my\_file%`,
		},
		{
			name:     "backslash is escaped",
			query:    `a\b`,
			expected: `%a\\b%`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, likePattern(tt.query))
		})
	}
}

func TestSearchRepository_SearchUsers(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expected      []models.UserSearchResult
	}{
		{
			name:  "success",
			query: "ali",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "email", "image_url"}).
					AddRow(1, "alice", "alice@example.com", "/static/uploads/alice.png").
					AddRow(3, "salim", "salim@aliexample.com", nil)
				mock.ExpectQuery(`SELECT id, username, email, image_url FROM users WHERE LOWER\(username\) LIKE \? OR LOWER\(email\) LIKE \? ORDER BY id`).
					WithArgs("%ali%", "%ali%").
					WillReturnRows(rows)
			},
			expectedError: false,
			expected: []models.UserSearchResult{
				{ID: 1, Name: "alice", Email: "alice@example.com", ImageURL: "/static/uploads/alice.png"},
				{ID: 3, Name: "salim", Email: "salim@aliexample.com", ImageURL: ""},
			},
		},
		{
			name:  "no matches returns empty slice",
			query: "nobody",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "email", "image_url"})
				mock.ExpectQuery(`SELECT id, username, email, image_url FROM users WHERE LOWER\(username\) LIKE \? OR LOWER\(email\) LIKE \? ORDER BY id`).
					WithArgs("%nobody%", "%nobody%").
					WillReturnRows(rows)
			},
			expectedError: false,
			expected:      []models.UserSearchResult{},
		},
		{
			name:  "database error",
			query: "ali",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, username, email, image_url FROM users WHERE LOWER\(username\) LIKE \? OR LOWER\(email\) LIKE \? ORDER BY id`).
					WithArgs("%ali%", "%ali%").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupSearchTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			results, err := repo.SearchUsers(context.Background(), tt.query)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, results)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, results)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSearchRepository_SearchPlaylists(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expected      []models.PlaylistSearchResult
	}{
		{
			name:  "success",
			query: "go",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title"}).
					AddRow(1, "Go Basics").
					AddRow(4, "Django for Beginners")
				mock.ExpectQuery(`SELECT id, title FROM playlists WHERE LOWER\(title\) LIKE \? ORDER BY id`).
					WithArgs("%go%").
					WillReturnRows(rows)
			},
			expectedError: false,
			expected: []models.PlaylistSearchResult{
				{ID: 1, Title: "Go Basics"},
				{ID: 4, Title: "Django for Beginners"},
			},
		},
		{
			name:  "no matches returns empty slice",
			query: "rust",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title"})
				mock.ExpectQuery(`SELECT id, title FROM playlists WHERE LOWER\(title\) LIKE \? ORDER BY id`).
					WithArgs("%rust%").
					WillReturnRows(rows)
			},
			expectedError: false,
			expected:      []models.PlaylistSearchResult{},
		},
		{
			name:  "database error",
			query: "go",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title FROM playlists WHERE LOWER\(title\) LIKE \? ORDER BY id`).
					WithArgs("%go%").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupSearchTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			results, err := repo.SearchPlaylists(context.Background(), tt.query)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, results)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, results)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSearchRepository_SearchVideos(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expected      []models.VideoSearchResult
	}{
		{
			name:  "matches when all fields contain the term",
			query: "go",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "description", "video_url"}).
					AddRow(2, "Go routines", "Concurrency in Go", "https://example.com/go-routines")
				mock.ExpectQuery(`SELECT id, title, description, video_url FROM videos WHERE LOWER\(title\) LIKE \? AND LOWER\(description\) LIKE \? AND LOWER\(video_url\) LIKE \? ORDER BY id`).
					WithArgs("%go%", "%go%", "%go%").
					WillReturnRows(rows)
			},
			expectedError: false,
			expected: []models.VideoSearchResult{
				{ID: 2, Title: "Go routines", Description: "Concurrency in Go", URL: "https://example.com/go-routines"},
			},
		},
		{
			name:  "no matches returns empty slice",
			query: "haskell",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "description", "video_url"})
				mock.ExpectQuery(`SELECT id, title, description, video_url FROM videos WHERE LOWER\(title\) LIKE \? AND LOWER\(description\) LIKE \? AND LOWER\(video_url\) LIKE \? ORDER BY id`).
					WithArgs("%haskell%", "%haskell%", "%haskell%").
					WillReturnRows(rows)
			},
			expectedError: false,
			expected:      []models.VideoSearchResult{},
		},
		{
			name:  "database error",
			query: "go",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, video_url FROM videos WHERE LOWER\(title\) LIKE \? AND LOWER\(description\) LIKE \? AND LOWER\(video_url\) LIKE \? ORDER BY id`).
					WithArgs("%go%", "%go%", "%go%").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupSearchTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			results, err := repo.SearchVideos(context.Background(), tt.query)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, results)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, results)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
