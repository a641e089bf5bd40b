package storage

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SanitizeFilename strips path components and replaces characters that are
// unsafe in a filename, keeping only letters, digits, dots, dashes and
// underscores.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if sanitized == "" {
		sanitized = "file"
	}
	return sanitized
}

// GenerateImageName builds a stored filename from an owner prefix and the
// sanitized original name. A uuid component keeps names from colliding
// when the same owner uploads the same file twice.
func GenerateImageName(owner, original string) string {
	return SanitizeFilename(owner) + "_" + uuid.New().String() + "_" + SanitizeFilename(original)
}
