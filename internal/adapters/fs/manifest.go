package fs

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*ManifestReader)(nil)

// ManifestReader reads package.json files from disk.
type ManifestReader struct{}

// NewManifestReader creates a new ManifestReader.
func NewManifestReader() *ManifestReader {
	return &ManifestReader{}
}

// Read parses the manifest in dir. It is read fresh on every call.
func (r *ManifestReader) Read(dir string) (*domain.Manifest, error) {
	path := filepath.Join(dir, domain.ManifestFile)
	//nolint:gosec // Path is constructed from the cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return &domain.Manifest{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	return &manifest, nil
}
