package ports

import "go.trai.ch/lode/internal/core/domain"

// ConfigLoader defines the interface for loading project manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest from the given project directory.
	Load(dir string) (*domain.Manifest, error)
}
