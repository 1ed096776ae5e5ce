// Package fs provides filesystem checks used while building and running environments.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks that an environment holds the executables it must provide.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// MissingExecutables returns the names that are absent from dir or not executable.
func (v *Verifier) MissingExecutables(dir string, names []string) ([]string, error) {
	var missing []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, name)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat executable"), "path", path)
		}
		if !IsExecutable(info) {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// IsExecutable reports whether info describes a regular file with an execute bit set.
func IsExecutable(info fs.FileInfo) bool {
	m := info.Mode()
	return !m.IsDir() && m&0o111 != 0
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
