// Package app implements the application layer for bottled.
package app

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/bottled/internal/engine/dispatcher"
	"go.trai.ch/bottled/internal/engine/reconciler"
	"go.trai.ch/bottled/internal/engine/scaffold"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	locker       ports.Locker
	store        ports.CacheInfoStore
	hasher       ports.Hasher
	builder      *scaffold.Builder
	deps         *reconciler.DependencyReconciler
	links        *reconciler.LinkReconciler
	dispatcher   *dispatcher.Dispatcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locker ports.Locker,
	store ports.CacheInfoStore,
	hasher ports.Hasher,
	builder *scaffold.Builder,
	deps *reconciler.DependencyReconciler,
	links *reconciler.LinkReconciler,
	disp *dispatcher.Dispatcher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		locker:       locker,
		store:        store,
		hasher:       hasher,
		builder:      builder,
		deps:         deps,
		links:        links,
		dispatcher:   disp,
		logger:       logger,
	}
}

// Run prepares the bottled app for the options resolved in cwd and runs the
// delegated command in it.
func (a *App) Run(ctx context.Context, cwd string, overrides domain.Overrides) error {
	opts, err := a.configLoader.Load(cwd, overrides)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.prepare(ctx, opts); err != nil {
		return err
	}

	return a.dispatcher.Dispatch(ctx, opts)
}

// prepare makes sure a complete cache exists and reconciles its dependencies
// and links. With opts.Lock the whole setup runs under the cache lock.
func (a *App) prepare(ctx context.Context, opts *domain.Options) error {
	if err := os.MkdirAll(opts.CacheRoot, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheRootCreateFailed.Error()), "cache_root", opts.CacheRoot)
	}

	if opts.Lock {
		unlock, err := a.locker.Lock(ctx, opts.LockPath())
		if err != nil {
			return err
		}
		defer a.release(unlock)
	}

	if err := a.ensureCache(ctx, opts); err != nil {
		return err
	}

	if err := a.deps.Reconcile(ctx, opts); err != nil {
		return err
	}

	return a.links.Reconcile(opts)
}

// ensureCache builds the cache when it is absent. Existence of the cache
// directory is the validity signal unless fingerprinting is enabled.
func (a *App) ensureCache(ctx context.Context, opts *domain.Options) error {
	cacheDir := opts.CacheDir()

	_, err := os.Lstat(cacheDir)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return a.builder.Build(ctx, opts)
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStatFailed.Error()), "cache_dir", cacheDir)
	}

	if opts.Fingerprint {
		stale, err := a.isStale(opts)
		if err != nil {
			return err
		}
		if stale {
			a.logger.Warn("bottled app is out of date, rebuilding")
			if err := os.RemoveAll(cacheDir); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrCacheRemoveFailed.Error()), "cache_dir", cacheDir)
			}
			return a.builder.Build(ctx, opts)
		}
	}

	a.logger.Info("re-using existing bottled app")
	return nil
}

// isStale reports whether the recorded fingerprint differs from the current
// one. A cache without a record is stale.
func (a *App) isStale(opts *domain.Options) (bool, error) {
	info, err := a.store.Get(opts.CacheDir())
	if err != nil {
		return false, err
	}
	if info == nil {
		return true, nil
	}

	current, err := a.hasher.Fingerprint(opts)
	if err != nil {
		return false, err
	}
	return info.Fingerprint != current, nil
}

func (a *App) release(unlock func() error) {
	if err := unlock(); err != nil {
		a.logger.Warn("failed to release cache lock")
	}
}

// Clean removes the bottled app for the resolved options, or every bottled
// app below the cache root when all is set.
func (a *App) Clean(ctx context.Context, cwd string, overrides domain.Overrides, all bool) error {
	opts, err := a.configLoader.Load(cwd, overrides)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	target := opts.CacheDir()
	if all {
		target = opts.CacheRoot
	}

	if _, err := os.Lstat(target); errors.Is(err, iofs.ErrNotExist) {
		a.logger.Info("nothing to clean at " + target)
		return nil
	}

	if opts.Lock && !all {
		unlock, err := a.locker.Lock(ctx, opts.LockPath())
		if err != nil {
			return err
		}
		defer a.release(unlock)
	}

	if err := os.RemoveAll(target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheRemoveFailed.Error()), "path", target)
	}
	a.logger.Info("removed " + target)
	return nil
}

// Config writes the resolved options as YAML.
func (a *App) Config(cwd string, overrides domain.Overrides, w io.Writer) error {
	opts, err := a.configLoader.Load(cwd, overrides)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return zerr.Wrap(err, "failed to encode configuration")
	}
	return enc.Close()
}
