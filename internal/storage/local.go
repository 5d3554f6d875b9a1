package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"orghub-backend/internal/logger"
)

// LocalStorage implements Storage on the local filesystem, with upload and
// download URLs pointing back at this server's file endpoints.
type LocalStorage struct {
	baseURL   string // e.g. "http://localhost:8080"
	uploadDir string
}

func NewLocalStorage(baseURL, uploadDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{baseURL: baseURL, uploadDir: uploadDir}, nil
}

func (s *LocalStorage) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	token := uuid.New().String()
	return fmt.Sprintf("%s/api/v1/files/upload/%s?key=%s", s.baseURL, token, url.QueryEscape(key)), nil
}

func (s *LocalStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/files/download?key=%s", s.baseURL, url.QueryEscape(key)), nil
}

func (s *LocalStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalStorage) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(s.pathFor(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStorage) SaveFile(key string, reader io.Reader) error {
	path := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", key, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) ReadFile(key string) (io.ReadCloser, error) {
	return os.Open(s.pathFor(key))
}

// CleanupExpired removes files under the tmp/ prefix older than maxAge.
// Uploads land in tmp/ until the owning entity is saved, so anything stale
// there was abandoned mid-form.
func (s *LocalStorage) CleanupExpired(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	tmpDir := filepath.Join(s.uploadDir, "tmp")
	err := filepath.Walk(tmpDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			logger.Warn("Failed to remove expired upload", "path", path, "error", err)
			return nil
		}
		removed++
		return nil
	})
	if os.IsNotExist(err) {
		return removed, nil
	}
	return removed, err
}

// NewFileKey builds a collision-free storage key under the given path
// prefix, preserving the original file name for download readability.
func NewFileKey(prefix, fileName string) string {
	return fmt.Sprintf("%s/%s-%s", strings.Trim(prefix, "/"), uuid.New().String(), filepath.Base(fileName))
}

// pathFor resolves a key inside the upload dir, refusing traversal.
func (s *LocalStorage) pathFor(key string) string {
	clean := filepath.Clean("/" + key)
	return filepath.Join(s.uploadDir, clean)
}
