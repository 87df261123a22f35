// Package reconciler repairs drift between the options and an existing bottled app.
package reconciler

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

// LinkReconciler makes every declared link a symlink into the invoker directory.
type LinkReconciler struct {
	logger ports.Logger
}

// NewLinkReconciler creates a new LinkReconciler.
func NewLinkReconciler(logger ports.Logger) *LinkReconciler {
	return &LinkReconciler{logger: logger}
}

// Reconcile processes links in order. Correct links are left untouched;
// anything else at a destination is removed and replaced.
func (r *LinkReconciler) Reconcile(opts *domain.Options) error {
	cacheDir := opts.CacheDir()
	for _, link := range opts.Links {
		if err := r.reconcile(link, opts.InvokerDir, cacheDir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "link", link.String())
		}
	}
	return nil
}

func (r *LinkReconciler) reconcile(link domain.Link, invokerDir, cacheDir string) error {
	if !domain.IsLocalDestination(link.Destination) {
		return zerr.With(zerr.New("destination is outside the bottled app"), "destination", link.Destination)
	}
	sourcePath := filepath.Join(invokerDir, link.Source)
	destinationPath := filepath.Join(cacheDir, link.Destination)

	inside, err := resolvesInside(filepath.Dir(destinationPath), cacheDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve destination parent"), "path", destinationPath)
	}
	if !inside {
		return zerr.With(zerr.New("destination parent resolves outside the bottled app"), "path", destinationPath)
	}

	info, err := os.Lstat(destinationPath)
	switch {
	case err == nil:
		if isLinkTo(destinationPath, info, sourcePath) {
			return nil
		}
		if err := os.RemoveAll(destinationPath); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove stale destination"), "path", destinationPath)
		}
	case !errors.Is(err, iofs.ErrNotExist):
		return zerr.With(zerr.Wrap(err, "failed to inspect destination"), "path", destinationPath)
	}

	if err := os.MkdirAll(filepath.Dir(destinationPath), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination parent"), "path", destinationPath)
	}

	r.logger.Info("linking " + link.Source + " -> " + link.Destination)
	if err := os.Symlink(sourcePath, destinationPath); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create symlink"), "path", destinationPath)
	}
	return nil
}

// isLinkTo reports whether path is a symlink whose target is exactly target.
func isLinkTo(path string, info iofs.FileInfo, target string) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	current, err := os.Readlink(path)
	return err == nil && current == target
}

// resolvesInside reports whether the deepest existing ancestor of path,
// with symlinks resolved, lies within root.
func resolvesInside(path, root string) (bool, error) {
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return false, err
	}

	for dir := path; ; {
		real, err := filepath.EvalSymlinks(dir)
		switch {
		case err == nil:
			rel, err := filepath.Rel(realRoot, real)
			if err != nil {
				return false, err
			}
			return filepath.IsLocal(rel), nil
		case !errors.Is(err, iofs.ErrNotExist):
			return false, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return false, nil
		}
		dir = parent
	}
}
