package ports

import "go.trai.ch/bottled/internal/core/domain"

// Hasher defines the interface for computing cache fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint hashes everything that shapes the content of a freshly built cache.
	Fingerprint(opts *domain.Options) (string, error)
}
