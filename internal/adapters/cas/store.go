// Package cas implements the manifest store kept inside each environment.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore with one JSON file per environment.
type Store struct{}

// NewStore creates a new manifest store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the manifest of the environment at root, or nil if it has none.
func (s *Store) Get(root string) (*domain.Manifest, error) {
	path := filepath.Join(filepath.Clean(root), domain.ManifestFileName)

	//nolint:gosec // Path is derived from the cache root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrManifestReadFailed, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(domain.ErrManifestReadFailed, zerr.With(zerr.Wrap(err, "unmarshal failed"), "path", path))
	}
	return &m, nil
}

// Put writes the manifest next to a temporary name and renames it into place,
// so a reader sees either no manifest or a complete one.
func (s *Store) Put(root string, manifest domain.Manifest) error {
	root = filepath.Clean(root)
	path := filepath.Join(root, domain.ManifestFileName)

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrManifestWriteFailed, zerr.Wrap(err, "marshal failed"))
	}

	tmp, err := os.CreateTemp(root, "."+domain.ManifestFileName+".*")
	if err != nil {
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(zerr.Wrap(err, "create failed"), "path", root))
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(zerr.Wrap(err, "write failed"), "path", tmpPath))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(zerr.Wrap(err, "close failed"), "path", tmpPath))
	}
	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(zerr.Wrap(err, "chmod failed"), "path", tmpPath))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(zerr.Wrap(err, "rename failed"), "path", path))
	}
	return nil
}

// List returns the environments found in cacheRoot, sorted by key.
// A missing cache root holds no environments.
func (s *Store) List(cacheRoot string) ([]domain.Record, error) {
	cacheRoot = filepath.Clean(cacheRoot)

	entries, err := os.ReadDir(cacheRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrManifestReadFailed, zerr.With(zerr.Wrap(err, "read dir failed"), "path", cacheRoot))
	}

	var records []domain.Record
	for _, entry := range entries {
		if !entry.IsDir() || !domain.IsEnvKey(entry.Name()) {
			continue
		}
		root := filepath.Join(cacheRoot, entry.Name())
		m, err := s.Get(root)
		if err != nil {
			return nil, err
		}
		records = append(records, domain.Record{Key: entry.Name(), Root: root, Manifest: m})
	}

	slices.SortFunc(records, func(a, b domain.Record) int {
		return strings.Compare(a.Key, b.Key)
	})
	return records, nil
}
