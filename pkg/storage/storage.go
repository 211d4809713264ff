// Package storage keeps uploaded meeting documents on local disk.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"mom-portal/backend/config"
)

var (
	ErrFileTooLarge       = errors.New("file exceeds the maximum upload size")
	ErrFileTypeNotAllowed = errors.New("invalid file type, only documents and images are allowed")
	ErrEmptyFile          = errors.New("file is empty")
	ErrOutsideStore       = errors.New("path is outside the upload directory")
)

// sniffLen bytes read up front for content detection
const sniffLen = 3072

// StoredFile result of a successful Save
type StoredFile struct {
	Path string
	Size int64
	MIME string
}

// LocalStore writes files under a single directory
type LocalStore struct {
	dir          string
	root         string
	maxSize      int64
	allowedTypes []string
}

// NewLocalStore creates the upload directory when missing
func NewLocalStore(cfg *config.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	allowed := cfg.AllowedTypes
	if len(allowed) == 0 {
		allowed = config.DefaultAllowedUploadTypes
	}
	return &LocalStore{dir: cfg.Dir, root: root, maxSize: cfg.MaxSize, allowedTypes: allowed}, nil
}

// MaxSize upload limit in bytes
func (s *LocalStore) MaxSize() int64 { return s.maxSize }

// Save sniffs the content type, enforces the allow-list and size limit, then streams
// the file to disk under a generated name. Nothing is left on disk when it fails.
func (s *LocalStore) Save(originalName string, r io.Reader) (*StoredFile, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if n == 0 {
		return nil, ErrEmptyFile
	}
	head = head[:n]

	mimeType, ok := s.matchAllowed(mimetype.Detect(head))
	if !ok {
		return nil, ErrFileTypeNotAllowed
	}

	name := "file-" + uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	body := io.MultiReader(bytes.NewReader(head), r)
	written, copyErr := io.Copy(dst, io.LimitReader(body, s.maxSize+1))
	closeErr := dst.Close()

	switch {
	case copyErr != nil:
		os.Remove(path)
		return nil, fmt.Errorf("write file: %w", copyErr)
	case closeErr != nil:
		os.Remove(path)
		return nil, fmt.Errorf("close file: %w", closeErr)
	case written > s.maxSize:
		os.Remove(path)
		return nil, ErrFileTooLarge
	}

	return &StoredFile{Path: path, Size: written, MIME: mimeType}, nil
}

// matchAllowed walks the detected type and its parents (e.g. text/plain under a
// charset variant) against the allow-list
func (s *LocalStore) matchAllowed(detected *mimetype.MIME) (string, bool) {
	for m := detected; m != nil; m = m.Parent() {
		for _, allowed := range s.allowedTypes {
			if m.Is(allowed) {
				return allowed, true
			}
		}
	}
	return "", false
}

// locate maps a stored path to its absolute location. Only files directly inside the
// upload directory are accepted.
func (s *LocalStore) locate(path string) (string, error) {
	if path == "" {
		return "", ErrOutsideStore
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrOutsideStore
	}
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == "." || rel == ".." || rel != filepath.Base(rel) {
		return "", ErrOutsideStore
	}
	return filepath.Join(s.root, rel), nil
}

// Resolve returns the absolute path of a stored file; false when the path points
// outside the upload directory or the file is missing
func (s *LocalStore) Resolve(path string) (string, bool) {
	abs, err := s.locate(path)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return abs, true
}

// Exists reports whether path is a stored regular file
func (s *LocalStore) Exists(path string) bool {
	_, ok := s.Resolve(path)
	return ok
}

// Remove deletes a stored file; a missing file is not an error. Paths outside the
// upload directory are never touched.
func (s *LocalStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	abs, err := s.locate(path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
