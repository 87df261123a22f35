// Package pnpm installs packages into bottled apps with pnpm.
package pnpm

import (
	"context"

	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageManager = (*PackageManager)(nil)

// PackageManager implements ports.PackageManager by running pnpm through npx.
type PackageManager struct {
	executor ports.Executor
}

// NewPackageManager creates a new PackageManager.
func NewPackageManager(executor ports.Executor) *PackageManager {
	return &PackageManager{executor: executor}
}

// Install installs the dependencies declared by the manifest in dir.
func (p *PackageManager) Install(ctx context.Context, dir string) error {
	return p.run(ctx, dir, nil)
}

// Add installs packages into the project in dir. Entries may be package
// names or local paths.
func (p *PackageManager) Add(ctx context.Context, dir string, packages []string) error {
	return p.run(ctx, dir, packages)
}

func (p *PackageManager) run(ctx context.Context, dir string, packages []string) error {
	cmd := &domain.Command{
		Name: domain.Runner,
		Args: InstallArgs(packages),
		Dir:  dir,
	}
	if err := p.executor.Execute(ctx, cmd, nil, nil); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to install packages"), "dir", dir)
	}
	return nil
}

// InstallArgs returns the npx arguments of a pnpm install of packages.
func InstallArgs(packages []string) []string {
	args := []string{"--yes", domain.PackageManager, "install"}
	return append(args, packages...)
}
