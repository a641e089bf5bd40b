package storage

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Save(t *testing.T) {
	t.Run("writes file and returns byte count", func(t *testing.T) {
		store := NewLocalStorage(t.TempDir())

		n, err := store.Save("avatar.png", bytes.NewReader([]byte("png bytes")))

		require.NoError(t, err)
		assert.Equal(t, int64(len("png bytes")), n)

		f, err := store.Open("avatar.png")
		require.NoError(t, err)
		defer f.Close()

		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, []byte("png bytes"), content)
	})

	t.Run("creates missing base directory", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "static", "uploads")
		store := NewLocalStorage(base)

		_, err := store.Save("avatar.png", bytes.NewReader([]byte("png bytes")))

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "avatar.png"))
		assert.NoError(t, err)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		dir := t.TempDir()
		store := NewLocalStorage(filepath.Join(dir, "uploads"))

		_, err := store.Save("../escape.png", bytes.NewReader([]byte("png bytes")))

		// Clean collapses the traversal, so the write must land inside the base
		if err == nil {
			_, statErr := os.Stat(filepath.Join(dir, "escape.png"))
			assert.True(t, os.IsNotExist(statErr))
		}
	})

	t.Run("removes partial file on failed copy", func(t *testing.T) {
		base := t.TempDir()
		store := NewLocalStorage(base)

		_, err := store.Save("broken.png", &failingReader{})

		assert.Error(t, err)
		_, statErr := os.Stat(filepath.Join(base, "broken.png"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

// failingReader always fails mid-read
type failingReader struct{}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, assert.AnError
}

func TestLocalStorage_Open(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Open("missing.png")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("existing file", func(t *testing.T) {
		_, err := store.Save("present.png", strings.NewReader("data"))
		require.NoError(t, err)

		f, err := store.Open("present.png")
		require.NoError(t, err)
		f.Close()
	})
}

func TestLocalStorage_Delete(t *testing.T) {
	base := t.TempDir()
	store := NewLocalStorage(base)

	_, err := store.Save("gone.png", strings.NewReader("data"))
	require.NoError(t, err)

	require.NoError(t, store.Delete("gone.png"))

	_, statErr := os.Stat(filepath.Join(base, "gone.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain name",
			input:    "avatar.png",
			expected: "avatar.png",
		},
		{
			name:     "path components stripped",
			input:    "../../etc/passwd",
			expected: "passwd",
		},
		{
			name:     "unsafe characters replaced",
			input:    "my photo (1).png",
			expected: "my_photo__1_.png",
		},
		{
			name:     "leading dots trimmed",
			input:    "...hidden",
			expected: "hidden",
		},
		{
			name:     "empty name falls back",
			input:    "",
			expected: "file",
		},
		{
			name:     "only unsafe characters falls back",
			input:    "...",
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestGenerateImageName(t *testing.T) {
	name := GenerateImageName("testuser", "avatar.png")

	assert.True(t, strings.HasPrefix(name, "testuser_"))
	assert.True(t, strings.HasSuffix(name, "_avatar.png"))

	// The uuid component keeps repeated uploads distinct
	other := GenerateImageName("testuser", "avatar.png")
	assert.NotEqual(t, name, other)
}
