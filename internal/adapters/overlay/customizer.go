// Package overlay materializes template overlays, local files and the built-in
// customizations on top of a generated bottled app.
package overlay

import (
	"context"
	"embed"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bottled/internal/adapters/fs"
	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed all:defaults
var defaults embed.FS

const defaultsRoot = "defaults"

// copyIgnores are never copied out of an overlay.
var copyIgnores = []string{"node_modules"}

var _ ports.Customizer = (*Customizer)(nil)

// Customizer implements ports.Customizer by copying files.
type Customizer struct {
	walker *fs.Walker
}

// NewCustomizer creates a new Customizer.
func NewCustomizer(walker *fs.Walker) *Customizer {
	return &Customizer{walker: walker}
}

// ApplyTemplate copies the template overlay over dir, replacing existing files.
func (c *Customizer) ApplyTemplate(ctx context.Context, opts *domain.Options, dir string) error {
	return c.copyTree(ctx, opts.TemplateOverlay, dir)
}

// ApplyLocalFiles copies the local files over dir.
func (c *Customizer) ApplyLocalFiles(ctx context.Context, opts *domain.Options, dir string) error {
	if opts.LocalFiles == "" {
		return nil
	}
	return c.copyTree(ctx, opts.LocalFiles, dir)
}

// ApplyDefaults writes the embedded customizations into dir.
func (c *Customizer) ApplyDefaults(ctx context.Context, _ *domain.Options, dir string) error {
	err := iofs.WalkDir(defaults, defaultsRoot, func(name string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(defaultsRoot, filepath.FromSlash(name))
		if err != nil {
			return err
		}
		data, err := defaults.ReadFile(name)
		if err != nil {
			return err
		}
		return writeFile(filepath.Join(dir, rel), data, domain.FilePerm)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCustomizeFailed.Error()), "dir", dir)
	}
	return nil
}

func (c *Customizer) copyTree(ctx context.Context, src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCustomizeFailed.Error()), "source", src)
	}
	if !info.IsDir() {
		return zerr.With(zerr.Wrap(zerr.New("not a directory"), domain.ErrCustomizeFailed.Error()), "source", src)
	}

	for file, err := range c.walker.WalkFiles(src, copyIgnores) {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCustomizeFailed.Error()), "source", src)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(src, file)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCustomizeFailed.Error()), "path", file)
		}
		if err := copyEntry(file, filepath.Join(dst, rel)); err != nil {
			return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCustomizeFailed.Error()), "source", file), "destination", filepath.Join(dst, rel))
		}
	}
	return nil
}

// copyEntry copies a regular file or recreates a symlink at dst.
func copyEntry(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return err
	}
	if err := os.RemoveAll(dst); err != nil {
		return err
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(src)
		if err != nil {
			return err
		}
		return os.Symlink(target, dst)
	}

	in, err := os.Open(src) //nolint:gosec // Path comes from the configured overlay
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	//nolint:gosec // Destination is inside the bottled app
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func writeFile(dst string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return err
	}
	return os.WriteFile(dst, data, perm)
}
