// Package storage provides local filesystem storage for uploaded images.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// URLPrefix is the route prefix under which stored files are served back.
// Image references persisted in the database are URLPrefix + filename.
const URLPrefix = "/static/uploads/"

// localStorage implements the image store over the local filesystem.
// Filenames are flat under basePath; references stored in the database
// are relative paths reconstructed by the static file handler.
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// fullPath resolves a stored filename under the base directory. Filenames
// are sanitized before storage, but the path is re-checked here so a
// crafted name can never escape basePath.
func (s *localStorage) fullPath(filename string) (string, error) {
	path := filepath.Join(s.basePath, filepath.Clean("/"+filename))
	base := filepath.Clean(s.basePath)
	if !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	return path, nil
}

// Save writes the reader's content to a new file and returns the number
// of bytes written. The partial file is removed on a failed copy.
func (s *localStorage) Save(filename string, r io.Reader) (int64, error) {
	path, err := s.fullPath(filename)
	if err != nil {
		return 0, err
	}

	// Ensure the upload directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	return n, nil
}

// Open opens a stored file for reading
func (s *localStorage) Open(filename string) (*os.File, error) {
	path, err := s.fullPath(filename)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Delete removes a stored file
func (s *localStorage) Delete(filename string) error {
	path, err := s.fullPath(filename)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
