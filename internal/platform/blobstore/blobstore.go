// Package blobstore stores the binary content of uploaded reports. Report
// metadata lives in Postgres; only the file bytes go through this package.
// It defines the Store interface, an in-memory implementation for tests, and
// a disk-backed implementation used in production.
package blobstore

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrBlobNotFound       = errors.New("blob not found")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrInvalidContentType = errors.New("content type is not allowed")
	ErrMissingFileName    = errors.New("file name is required")
)

// MaxFileSize is the maximum allowed blob size in bytes (20 MB).
const MaxFileSize = 20 * 1024 * 1024

// AllowedContentTypes lists the MIME types accepted for report uploads.
var AllowedContentTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"application/pdf": true,
	"text/plain":      true,
}

// Blob describes a stored file.
type Blob struct {
	Key         string    `json:"key"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Hash        string    `json:"hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store is the contract for blob storage backends.
type Store interface {
	Put(ctx context.Context, fileName, contentType string, content io.Reader) (*Blob, error)
	Get(ctx context.Context, key string) (io.ReadCloser, *Blob, error)
	Delete(ctx context.Context, key string) error
}

func validate(fileName, contentType string) error {
	if fileName == "" {
		return ErrMissingFileName
	}
	if !AllowedContentTypes[contentType] {
		return ErrInvalidContentType
	}
	return nil
}
