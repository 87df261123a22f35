package ports

import (
	"context"

	"go.trai.ch/bottled/internal/core/domain"
)

// Generator produces a raw framework project.
//
//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type Generator interface {
	// Generate creates a new project in dir, which must not exist yet.
	Generate(ctx context.Context, opts *domain.Options, dir string) error
}
