package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piprun/internal/adapters/fs"
)

func TestVerifier_MissingExecutables(t *testing.T) {
	dir := t.TempDir()
	verifier := fs.NewVerifier()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "python"), []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pip"), []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme"), []byte("text"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lib"), 0o750))

	// Case 1: all present
	missing, err := verifier.MissingExecutables(dir, []string{"python", "pip"})
	require.NoError(t, err)
	assert.Empty(t, missing)

	// Case 2: absent, not executable, and directory entries are all missing
	missing, err = verifier.MissingExecutables(dir, []string{"python", "pip3", "readme", "lib"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pip3", "readme", "lib"}, missing)
}

func TestVerifier_MissingDir(t *testing.T) {
	missing, err := fs.NewVerifier().MissingExecutables(filepath.Join(t.TempDir(), "nope"), []string{"python"})
	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, missing)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, fs.Exists(dir))
	assert.False(t, fs.Exists(filepath.Join(dir, "missing")))
}
