package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store owns the upload directory tree. Nothing else writes under it.
// Layout: {root}/{slug}/{id}.{ext} and {root}/{slug}/{id}.thumb.{ext}.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload root %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Root returns the upload root directory.
func (s *Store) Root() string { return s.root }

// WriteOriginal stores the uploaded bytes under the owner's directory and
// returns the storage-relative path. The write goes to a temporary file in
// the destination directory first and is renamed into place, so a partially
// written file is never visible under its final name.
func (s *Store) WriteOriginal(slug, id, ext string, data []byte) (string, error) {
	return s.write(slug, id+ext, data)
}

// WriteThumbnail stores derived thumbnail bytes with the same atomic-write
// discipline, independently of the original.
func (s *Store) WriteThumbnail(slug, id, ext string, data []byte) (string, error) {
	return s.write(slug, id+".thumb"+ext, data)
}

func (s *Store) write(slug, filename string, data []byte) (string, error) {
	if err := checkComponent(slug); err != nil {
		return "", err
	}
	if err := checkComponent(filename); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to close %s: %w", filename, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to chmod %s: %w", filename, err)
	}

	final := filepath.Join(dir, filename)
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to rename %s into place: %w", filename, err)
	}

	return filepath.Join(slug, filename), nil
}

// Resolve maps a slug and stored filename to an absolute path, or the
// thumbnail path when thumb is set. Traversal sequences and absolute
// components resolve to ErrPathEscape; a missing file to ErrNotFound.
func (s *Store) Resolve(slug, filename string, thumb bool) (string, error) {
	if err := checkComponent(slug); err != nil {
		return "", err
	}
	if err := checkComponent(filename); err != nil {
		return "", err
	}

	if thumb {
		ext := filepath.Ext(filename)
		filename = strings.TrimSuffix(filename, ext) + ".thumb" + ext
	}

	path := filepath.Join(s.root, slug, filename)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

// RemoveOwner deletes an owner's entire directory. ErrNotFound when the
// directory does not exist.
func (s *Store) RemoveOwner(slug string) error {
	if err := checkComponent(slug); err != nil {
		return err
	}
	dir := filepath.Join(s.root, slug)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return ErrNotFound
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	return nil
}

// EnsureOwnerDir creates the owner's directory if absent. Used when an
// album is created before any file lands in it.
func (s *Store) EnsureOwnerDir(slug string) error {
	if err := checkComponent(slug); err != nil {
		return err
	}
	dir := filepath.Join(s.root, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// checkComponent rejects anything that could step outside the upload
// root: empty names, dot entries, traversal sequences, separators and
// absolute paths. The guard is mandatory, not hardening.
func checkComponent(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrPathEscape
	}
	if strings.Contains(name, "..") {
		return ErrPathEscape
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrPathEscape
	}
	if filepath.IsAbs(name) {
		return ErrPathEscape
	}
	return nil
}
