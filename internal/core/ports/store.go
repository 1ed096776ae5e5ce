package ports

import "go.trai.ch/piprun/internal/core/domain"

// ManifestStore reads and writes environment manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get returns the manifest of the environment at root, or nil if there is none.
	Get(root string) (*domain.Manifest, error)

	// Put atomically writes the manifest of the environment at root.
	Put(root string, manifest domain.Manifest) error

	// List returns every key-shaped environment under cacheRoot, sorted by key.
	List(cacheRoot string) ([]domain.Record, error)
}
