// Package media accepts uploaded files and produces servable references.
package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// DiskStorage writes uploaded files under a public images directory and
// returns the relative URL path they are served at.
type DiskStorage struct {
	dir string
}

// NewDiskStorage creates a DiskStorage rooted at dir, creating it if needed
func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &DiskStorage{dir: dir}, nil
}

// Save stores the uploaded file under a name combining the upload time and
// the original filename, and returns the public URL path. Two uploads of
// the same file in the same millisecond collide; that window is accepted.
func (s *DiskStorage) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Base strips any client-supplied directory components
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))

	dst, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	// A write that only surfaces at close must not yield a servable path
	if err := dst.Close(); err != nil {
		return "", err
	}

	return "/images/" + storedName, nil
}
