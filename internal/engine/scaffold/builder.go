// Package scaffold builds bottled apps into the cache.
package scaffold

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder materializes a bottled app. It builds into a staging directory next
// to the cache and renames it into place only once every step succeeded, so
// an existing cache directory is always complete.
type Builder struct {
	generator ports.Generator
	packages  ports.PackageManager
	customize ports.Customizer
	hasher    ports.Hasher
	store     ports.CacheInfoStore
	logger    ports.Logger

	newID func() string
	now   func() time.Time
}

// NewBuilder creates a new Builder.
func NewBuilder(
	generator ports.Generator,
	packages ports.PackageManager,
	customize ports.Customizer,
	hasher ports.Hasher,
	store ports.CacheInfoStore,
	logger ports.Logger,
) *Builder {
	return &Builder{
		generator: generator,
		packages:  packages,
		customize: customize,
		hasher:    hasher,
		store:     store,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Build creates the cache directory for opts. The cache directory must not exist.
func (b *Builder) Build(ctx context.Context, opts *domain.Options) error {
	cacheDir := opts.CacheDir()

	if err := os.MkdirAll(opts.CacheRoot, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheRootCreateFailed.Error()), "cache_root", opts.CacheRoot)
	}

	staging := opts.StagingDir(b.newID())
	if err := b.stage(ctx, opts, staging); err != nil {
		b.discard(staging)
		return zerr.With(zerr.Wrap(err, domain.ErrScaffoldFailed.Error()), "cache_dir", cacheDir)
	}

	if err := os.Rename(staging, cacheDir); err != nil {
		b.discard(staging)
		if _, statErr := os.Lstat(cacheDir); statErr == nil {
			b.logger.Warn("bottled app was built concurrently, re-using it")
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrPromoteFailed.Error()), "cache_dir", cacheDir)
	}

	b.logger.Info("bottled app successfully generated")
	return nil
}

// stage runs every build step inside dir.
func (b *Builder) stage(ctx context.Context, opts *domain.Options, dir string) error {
	b.logger.Info("generating bottled app with " + domain.GeneratorPackage + "@" + opts.EmberVersion)
	if err := b.generator.Generate(ctx, opts, dir); err != nil {
		return err
	}
	if _, err := os.Stat(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStagingCreateFailed.Error()), "path", dir)
	}

	if err := b.packages.Install(ctx, dir); err != nil {
		return err
	}

	b.logger.Info("customising bottled app")
	template := filepath.Join(dir, filepath.FromSlash(domain.ApplicationTemplate))
	if err := os.Remove(template); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCustomizeFailed.Error()), "path", template)
	}

	if opts.TemplateOverlay != "" {
		if err := b.customize.ApplyTemplate(ctx, opts, dir); err != nil {
			return err
		}
	} else {
		if err := b.customize.ApplyDefaults(ctx, opts, dir); err != nil {
			return err
		}
	}
	if err := b.customize.ApplyLocalFiles(ctx, opts, dir); err != nil {
		return err
	}

	b.logger.Info("installing linking your local app")
	if err := b.packages.Add(ctx, dir, []string{opts.InvokerDir}); err != nil {
		return err
	}

	fingerprint, err := b.hasher.Fingerprint(opts)
	if err != nil {
		return err
	}
	return b.store.Put(dir, domain.CacheInfo{
		Key:          opts.CacheKey(),
		EmberVersion: opts.EmberVersion,
		Fingerprint:  fingerprint,
		CreatedAt:    b.now().UTC(),
	})
}

func (b *Builder) discard(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		b.logger.Warn("failed to remove staging directory " + dir)
	}
}
