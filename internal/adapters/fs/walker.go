// Package fs provides file system adapters for walking, hashing and reading manifests.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every non-directory entry below root in lexical order,
// skipping VCS metadata and names matching ignores. Yielded paths include root.
// Symlinks are yielded without being followed. A walk error is yielded once
// with an empty path and ends the sequence.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, skipErr := w.shouldSkip(d, ignores); skip {
				return skipErr
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil && !stopped {
			yield("", zerr.With(zerr.Wrap(err, "failed to walk directory"), "root", root))
		}
	}
}

// shouldSkip reports whether the entry is excluded. For directories the
// returned error is filepath.SkipDir.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
