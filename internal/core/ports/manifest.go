package ports

import "go.trai.ch/bottled/internal/core/domain"

// ManifestReader reads the package manifest of a project.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest in dir. A missing manifest yields an empty one.
	Read(dir string) (*domain.Manifest, error)
}
