// Package lock provides advisory file locks guarding cache setup.
package lock

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Locker = (*Locker)(nil)

// Locker implements ports.Locker with flock(2) style locks.
type Locker struct {
	logger ports.Logger
}

// NewLocker creates a new Locker.
func NewLocker(logger ports.Logger) *Locker {
	return &Locker{logger: logger}
}

// Lock takes an exclusive lock on path, polling until it is free or ctx is done.
func (l *Locker) Lock(ctx context.Context, path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", path)
	}

	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", path)
	}
	if !ok {
		l.logger.Info("waiting for another bottled process to finish setup")
		ok, err = fl.TryLockContext(ctx, domain.LockRetryDelay)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", path)
		}
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrLockFailed, "lock not acquired"), "path", path)
		}
	}

	return fl.Unlock, nil
}
