package ports

import (
	"context"

	"go.trai.ch/bottled/internal/core/domain"
)

// Customizer materializes files on top of a generated project.
//
//go:generate mockgen -source=customizer.go -destination=mocks/mock_customizer.go -package=mocks
type Customizer interface {
	// ApplyTemplate copies the template overlay over dir.
	ApplyTemplate(ctx context.Context, opts *domain.Options, dir string) error

	// ApplyDefaults writes the built-in customizations into dir.
	ApplyDefaults(ctx context.Context, opts *domain.Options, dir string) error

	// ApplyLocalFiles copies the local files over dir. It is a no-op when none are configured.
	ApplyLocalFiles(ctx context.Context, opts *domain.Options, dir string) error
}
