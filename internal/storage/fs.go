// Package storage keeps uploaded exam documents on the local
// filesystem for the duration of a request. Nothing else is persisted.
package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// UploadStore saves request uploads under keys and hands back paths the
// extractors can read.
type UploadStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Path(key string) string
	Remove(key string) error
}

type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./uploads"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) Put(key string, r io.Reader) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	dst := s.Path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return key, nil
}

func (s *FSStore) Path(key string) string {
	return filepath.Join(s.base, filepath.Clean(key))
}

func (s *FSStore) Remove(key string) error {
	return os.Remove(s.Path(key))
}
