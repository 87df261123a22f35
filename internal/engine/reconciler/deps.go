package reconciler

import (
	"context"

	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

// DependencyReconciler installs extra packages that are missing from the bottled app.
type DependencyReconciler struct {
	manifests ports.ManifestReader
	packages  ports.PackageManager
	logger    ports.Logger
}

// NewDependencyReconciler creates a new DependencyReconciler.
func NewDependencyReconciler(
	manifests ports.ManifestReader,
	packages ports.PackageManager,
	logger ports.Logger,
) *DependencyReconciler {
	return &DependencyReconciler{
		manifests: manifests,
		packages:  packages,
		logger:    logger,
	}
}

// Reconcile reads the manifest fresh and, if any dependency is missing,
// installs the full requested set in a single call. Versions are not compared.
func (r *DependencyReconciler) Reconcile(ctx context.Context, opts *domain.Options) error {
	if len(opts.Deps) == 0 {
		return nil
	}

	cacheDir := opts.CacheDir()
	manifest, err := r.manifests.Read(cacheDir)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDependencyInstallFailed.Error())
	}

	if manifest.Satisfies(opts.Deps) {
		r.logger.Info("keeping existing deps")
		return nil
	}

	r.logger.Info("installing your personal dependencies")
	if err := r.packages.Add(ctx, cacheDir, opts.Deps); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDependencyInstallFailed.Error()), "missing", manifest.Missing(opts.Deps))
	}
	r.logger.Info("finished installing your personal dependencies")
	return nil
}
