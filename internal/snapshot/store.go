package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"qsnap/internal/discovery"
)

// ErrNotFound is returned by Read when no snapshot exists for a case.
var ErrNotFound = errors.New("snapshot not found")

// Store owns all reads and writes of snapshot files. Snapshots are
// collected into one reserved container directory per test directory,
// keyed by the case's base name.
type Store struct {
	walker        *discovery.Walker
	containerName string
	ext           string
}

// NewStore creates a Store over the given container name and snapshot
// file extension. The walker locates containers during Clean.
func NewStore(walker *discovery.Walker, containerName, ext string) *Store {
	return &Store{walker: walker, containerName: containerName, ext: ext}
}

// PathFor maps a case to its snapshot location. The mapping depends only
// on the case's directory and base name, never on file contents.
func (s *Store) PathFor(dir, caseName string) string {
	return filepath.Join(dir, s.containerName, caseName+s.ext)
}

// Read returns the stored snapshot text, or ErrNotFound if none exists.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read snapshot %s: %w", path, err)
	}
	return string(data), nil
}

// Write stores the snapshot text, creating the container as needed and
// overwriting unconditionally.
func (s *Store) Write(path, text string) error {
	if err := s.EnsureContainer(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// EnsureContainer creates the results container if absent. A same-named
// regular file is removed and replaced by a directory; this is a repair
// step for trees touched by hand.
func (s *Store) EnsureContainer(container string) error {
	info, err := os.Stat(container)
	if err == nil && info.IsDir() {
		return nil
	}
	if err == nil {
		if err := os.Remove(container); err != nil {
			return fmt.Errorf("replace stray file %s: %w", container, err)
		}
	}
	if err := os.MkdirAll(container, 0755); err != nil {
		return fmt.Errorf("create container %s: %w", container, err)
	}
	return nil
}

// Clean removes the results container under dir and under every child
// directory. Failures below the top level are collected so the rest of
// the tree is still cleaned; a tree with no containers is a no-op.
func (s *Store) Clean(dir string) error {
	l, err := s.walker.List(dir)
	if err != nil {
		return err
	}
	var errs []error
	if l.ResultsDir != "" {
		if err := os.RemoveAll(l.ResultsDir); err != nil {
			errs = append(errs, fmt.Errorf("remove container %s: %w", l.ResultsDir, err))
		}
	}
	for _, sub := range l.Subdirs {
		if err := s.Clean(sub); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
