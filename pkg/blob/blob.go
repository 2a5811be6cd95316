// Package blob stores uploaded files outside the database.
package blob

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrInvalidPath = errors.New("invalid blob path")

// Storage is the blob capability the library core depends on.
type Storage interface {
	// Store writes data under folder and returns the stored path.
	// The original name only contributes its extension.
	Store(ctx context.Context, folder, name string, data []byte) (string, error)
	Exists(ctx context.Context, p string) (bool, error)
	// Delete reports whether something was removed.
	Delete(ctx context.Context, p string) (bool, error)
	URL(p string) string
}

func objectName(folder, name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return path.Join(strings.Trim(folder, "/"), uuid.NewString()+ext)
}

func cleanPath(p string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(p))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.Contains(cleaned, "..") {
		return "", errors.Wrapf(ErrInvalidPath, "%q", p)
	}
	return cleaned, nil
}
