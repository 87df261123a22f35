package ports

import "go.trai.ch/bottled/internal/core/domain"

// ConfigLoader defines the interface for resolving run options.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges defaults, the config file found in cwd, the environment and
	// the given overrides into validated options.
	Load(cwd string, overrides domain.Overrides) (*domain.Options, error)
}
