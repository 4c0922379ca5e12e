// Package filestore persists uploaded image files to a local directory.
// Files are written under a generated name so concurrent uploads of the same
// original filename never collide. Deleting image metadata does not remove
// the stored file; orphaned files are an accepted cost of keeping metadata
// deletion a single-row operation.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrInvalidExtension = errors.New("only image files (.jpg, .png, .gif, ...) and DICOM files (.dcm, .dicom, .dic) are allowed")
	ErrMissingFileName  = errors.New("file name is required")
)

// allowedExtensions lists the accepted upload extensions: standard raster
// image formats plus the DICOM family.
var allowedExtensions = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true,
	".bmp": true, ".tiff": true, ".webp": true,
	".dcm": true, ".dicom": true, ".dic": true,
}

// Store writes uploads to a directory on local disk.
type Store struct {
	dir      string
	maxBytes int64
}

// New creates the upload directory if needed and returns a Store.
func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// AllowedExtension reports whether the original filename carries an accepted
// extension.
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Save streams content to disk under a generated name that preserves the
// original extension, and returns the stored file name. Content larger than
// the configured cap is rejected and the partial file removed.
func (s *Store) Save(originalName string, content io.Reader) (string, error) {
	if originalName == "" {
		return "", ErrMissingFileName
	}
	if !AllowedExtension(originalName) {
		return "", ErrInvalidExtension
	}

	storedName := fmt.Sprintf("file-%d-%d%s",
		time.Now().UnixMilli(), rand.Int63n(1_000_000_000), strings.ToLower(filepath.Ext(originalName)))
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(content, s.maxBytes+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write stored file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(path)
		return "", ErrFileTooLarge
	}

	return storedName, nil
}
