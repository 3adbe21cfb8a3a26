package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"parley/internal/shared/config"
)

// LocalStore keeps attachment blobs on the local filesystem under a
// configurable base path. Storage paths are opaque keys relative to the
// base path; PublicURL maps them to the serving route.
type LocalStore struct {
	basePath      string
	publicBaseURL string
}

func NewLocalStore(cfg config.StorageConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStore{
		basePath:      cfg.BasePath,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Store writes the blob and returns its storage path key.
func (s *LocalStore) Store(fileName string, r io.Reader) (string, error) {
	ext := filepath.Ext(fileName)
	key := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.basePath, key))
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}

	return key, nil
}

// Open returns a reader for a stored blob.
func (s *LocalStore) Open(storagePath string) (io.ReadCloser, error) {
	// Storage paths are generated keys; reject anything traversing out.
	if strings.Contains(storagePath, "..") || strings.ContainsRune(storagePath, os.PathSeparator) {
		return nil, fmt.Errorf("invalid storage path")
	}

	f, err := os.Open(filepath.Join(s.basePath, storagePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return f, nil
}

// PublicURL maps a storage path to its public serving URL.
func (s *LocalStore) PublicURL(storagePath string) string {
	return s.publicBaseURL + "/" + storagePath
}
