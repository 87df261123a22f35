package ports

import "go.trai.ch/bottled/internal/core/domain"

// CacheInfoStore defines the interface for reading and writing the record of a built cache.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheInfoStore interface {
	// Get retrieves the cache info stored in dir.
	// Returns nil, nil if not found.
	Get(dir string) (*domain.CacheInfo, error)

	// Put stores the cache info in dir.
	Put(dir string, info domain.CacheInfo) error
}
