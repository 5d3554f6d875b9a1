package storage

import (
	"context"
	"io"
	"time"
)

// Storage is the file-storage collaborator used for organization logos,
// statutes and report files. The only shipped backend writes to the local
// filesystem and serves files over HTTP; a cloud backend slots in behind
// the same presigned-URL shape.
type Storage interface {
	// GenerateUploadURL returns a URL the client PUTs the file to. The key
	// is carried in a query parameter so the upload handler knows where to
	// save it.
	GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a URL the file can be fetched from.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile persists an uploaded file (used by the local upload handler).
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a file for reading (used by the local download handler).
	ReadFile(key string) (io.ReadCloser, error)
}

// ValidUploadTypes is the mime whitelist enforced by the upload handler.
var ValidUploadTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}
