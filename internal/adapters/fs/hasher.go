package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// fingerprintIgnores are never part of a fingerprint.
var fingerprintIgnores = []string{"node_modules"}

// Hasher computes cache fingerprints.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// Fingerprint hashes the inputs that shape a freshly built cache: the framework
// version, the cache name, the invoker directory and the contents of the
// template overlay and local files. Deps and links are reconciled on every run
// and are not included.
func (h *Hasher) Fingerprint(opts *domain.Options) (string, error) {
	hasher := xxhash.New()

	for _, field := range []string{opts.EmberVersion, opts.CacheName, opts.InvokerDir} {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0})
	}

	for _, dir := range []string{opts.TemplateOverlay, opts.LocalFiles} {
		if err := h.hashTree(dir, hasher); err != nil {
			return "", zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashTree hashes relative paths and contents of every file below root.
func (h *Hasher) hashTree(root string, digest io.Writer) error {
	if root == "" {
		return nil
	}
	_, _ = io.WriteString(digest, root)
	_, _ = digest.Write([]byte{0})

	if _, err := os.Stat(root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", root)
	}

	for path, err := range h.walker.WalkFiles(root, fingerprintIgnores) {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
		}
		_, _ = io.WriteString(digest, filepath.ToSlash(rel))
		_, _ = digest.Write([]byte{0})

		sum, err := h.ComputeFileHash(path)
		if err != nil {
			return err
		}
		if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
			return zerr.Wrap(err, "failed to write hash to digest")
		}
	}
	return nil
}

// ComputeFileHash computes the XXHash of a file's content. Symlinks hash their target path.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(path)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, "failed to read link"), "path", path)
		}
		return xxhash.Sum64String(target), nil
	}

	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
