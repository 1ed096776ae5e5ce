package ports

import "go.trai.ch/piprun/internal/core/domain"

// ConfigLoader defines the interface for loading configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and applies environment overrides.
	// An empty path selects the default location. A missing file yields the defaults.
	Load(path string) (*domain.Config, error)
}
