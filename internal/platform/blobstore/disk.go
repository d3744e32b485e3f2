package blobstore

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Disk stores blobs as files under a root directory, one content file and
// one sidecar .meta.json per blob.
type Disk struct {
	root string
}

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob directory %s: %w", root, err)
	}
	return &Disk{root: root}, nil
}

func (s *Disk) contentPath(key string) string {
	return filepath.Join(s.root, key)
}

func (s *Disk) metaPath(key string) string {
	return filepath.Join(s.root, key+".meta.json")
}

func (s *Disk) Put(_ context.Context, fileName, contentType string, content io.Reader) (*Blob, error) {
	if err := validate(fileName, contentType); err != nil {
		return nil, err
	}

	key := uuid.New().String()

	f, err := os.Create(s.contentPath(key))
	if err != nil {
		return nil, fmt.Errorf("create blob file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(f, h), io.LimitReader(content, MaxFileSize+1))
	if err != nil {
		os.Remove(s.contentPath(key))
		return nil, fmt.Errorf("write blob content: %w", err)
	}
	if n > MaxFileSize {
		os.Remove(s.contentPath(key))
		return nil, ErrFileTooLarge
	}

	meta := Blob{
		Key:         key,
		FileName:    fileName,
		ContentType: contentType,
		Size:        n,
		Hash:        fmt.Sprintf("%x", h.Sum(nil)),
		CreatedAt:   time.Now().UTC(),
	}

	metaBytes, err := json.Marshal(meta)
	if err != nil {
		os.Remove(s.contentPath(key))
		return nil, fmt.Errorf("marshal blob metadata: %w", err)
	}
	if err := os.WriteFile(s.metaPath(key), metaBytes, 0o644); err != nil {
		os.Remove(s.contentPath(key))
		return nil, fmt.Errorf("write blob metadata: %w", err)
	}

	out := meta
	return &out, nil
}

func (s *Disk) Get(_ context.Context, key string) (io.ReadCloser, *Blob, error) {
	metaBytes, err := os.ReadFile(s.metaPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrBlobNotFound
		}
		return nil, nil, fmt.Errorf("read blob metadata: %w", err)
	}

	var meta Blob
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, nil, fmt.Errorf("unmarshal blob metadata: %w", err)
	}

	f, err := os.Open(s.contentPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrBlobNotFound
		}
		return nil, nil, fmt.Errorf("open blob content: %w", err)
	}

	return f, &meta, nil
}

func (s *Disk) Delete(_ context.Context, key string) error {
	if _, err := os.Stat(s.metaPath(key)); os.IsNotExist(err) {
		return ErrBlobNotFound
	}
	if err := os.Remove(s.contentPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob content: %w", err)
	}
	if err := os.Remove(s.metaPath(key)); err != nil {
		return fmt.Errorf("remove blob metadata: %w", err)
	}
	return nil
}
