// Package ember generates framework scaffolds with the ember-cli generator.
package ember

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

// AppName is the package name of every generated bottled app.
const AppName = "bottled-app"

var _ ports.Generator = (*Generator)(nil)

// Generator implements ports.Generator by running `ember new` through npx.
type Generator struct {
	executor ports.Executor
}

// NewGenerator creates a new Generator.
func NewGenerator(executor ports.Executor) *Generator {
	return &Generator{executor: executor}
}

// Generate creates a raw scaffold at dir. Dependencies are not installed.
func (g *Generator) Generate(ctx context.Context, opts *domain.Options, dir string) error {
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheRootCreateFailed.Error()), "path", parent)
	}

	cmd := &domain.Command{
		Name: domain.Runner,
		Args: GenerateArgs(opts.EmberVersion, filepath.Base(dir)),
		Dir:  parent,
	}
	if err := g.executor.Execute(ctx, cmd, nil, nil); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to generate app"), "ember_version", opts.EmberVersion)
	}
	return nil
}

// GenerateArgs returns the npx arguments generating an app into directory.
func GenerateArgs(version, directory string) []string {
	if version == "" {
		version = domain.DefaultEmberVersion
	}
	return []string{
		"--yes",
		domain.GeneratorPackage + "@" + version,
		"new", AppName,
		"--directory", directory,
		"--skip-npm",
		"--skip-git",
		"--no-welcome",
	}
}
