package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piprun/internal/adapters/cas"
	"go.trai.ch/piprun/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	manifest := domain.Manifest{
		Key:          "abc",
		Interpreter:  "/usr/bin/python3",
		Requirements: []string{"Flask==1.0", "requests"},
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Version:      "dev",
	}
	require.NoError(t, store.Put(root, manifest))

	got, err := store.Get(root)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, manifest, *got)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, domain.ManifestFileName, entries[0].Name())
}

func TestStore_GetMissing(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetCorrupt(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ManifestFileName), []byte("{"), domain.FilePerm))

	_, err := cas.NewStore().Get(root)
	require.ErrorIs(t, err, domain.ErrManifestReadFailed)
}

func TestStore_PutMissingRoot(t *testing.T) {
	err := cas.NewStore().Put(filepath.Join(t.TempDir(), "gone"), domain.Manifest{})
	require.ErrorIs(t, err, domain.ErrManifestWriteFailed)
}

func TestStore_List(t *testing.T) {
	cacheRoot := t.TempDir()
	store := cas.NewStore()

	complete := domain.NewEnvironment(cacheRoot, domain.EnvSpec{Requirements: []string{"a"}})
	partial := domain.NewEnvironment(cacheRoot, domain.EnvSpec{Requirements: []string{"b"}})

	require.NoError(t, os.Mkdir(complete.Root(), domain.DirPerm))
	require.NoError(t, store.Put(complete.Root(), domain.Manifest{Key: complete.Key()}))
	require.NoError(t, os.Mkdir(partial.Root(), domain.DirPerm))

	// Entries that are not environments are ignored.
	require.NoError(t, os.WriteFile(complete.LockPath(), nil, domain.FilePerm))
	require.NoError(t, os.Mkdir(filepath.Join(cacheRoot, "other"), domain.DirPerm))

	records, err := store.List(cacheRoot)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byKey := map[string]domain.Record{}
	for _, r := range records {
		byKey[r.Key] = r
	}
	assert.True(t, byKey[complete.Key()].Complete())
	assert.Equal(t, complete.Root(), byKey[complete.Key()].Root)
	assert.False(t, byKey[partial.Key()].Complete())
	assert.Less(t, records[0].Key, records[1].Key)
}

func TestStore_ListMissingRoot(t *testing.T) {
	records, err := cas.NewStore().List(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
