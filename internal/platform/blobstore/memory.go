package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

type storedBlob struct {
	meta    Blob
	content []byte
}

// Memory is a thread-safe in-memory Store for tests and development.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]*storedBlob
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]*storedBlob)}
}

func (s *Memory) Put(_ context.Context, fileName, contentType string, content io.Reader) (*Blob, error) {
	if err := validate(fileName, contentType); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(content, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	if int64(len(data)) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	h := sha256.Sum256(data)
	meta := Blob{
		Key:         uuid.New().String(),
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
		Hash:        fmt.Sprintf("%x", h),
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.blobs[meta.Key] = &storedBlob{meta: meta, content: data}
	s.mu.Unlock()

	out := meta
	return &out, nil
}

func (s *Memory) Get(_ context.Context, key string) (io.ReadCloser, *Blob, error) {
	s.mu.RLock()
	blob, ok := s.blobs[key]
	s.mu.RUnlock()

	if !ok {
		return nil, nil, ErrBlobNotFound
	}

	meta := blob.meta
	return io.NopCloser(bytes.NewReader(blob.content)), &meta, nil
}

func (s *Memory) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blobs[key]; !ok {
		return ErrBlobNotFound
	}
	delete(s.blobs, key)
	return nil
}
