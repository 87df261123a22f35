package ports

import "context"

// Locker serializes access to a cache across processes.
//
//go:generate mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type Locker interface {
	// Lock blocks until the lock at path is held or ctx is done.
	// The returned function releases the lock.
	Lock(ctx context.Context, path string) (func() error, error)
}
