// Package cas stores the record describing how a bottled app was built.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheInfoStore = (*Store)(nil)

// Store implements ports.CacheInfoStore with a JSON file inside the cache directory.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the cache info stored in dir.
func (s *Store) Get(dir string) (*domain.CacheInfo, error) {
	filename := filepath.Join(dir, domain.CacheInfoFile)
	//nolint:gosec // Path is constructed from the cache directory
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var info domain.CacheInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}

	return &info, nil
}

// Put writes the cache info to dir, replacing any previous record atomically.
func (s *Store) Put(dir string, info domain.CacheInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := filepath.Join(dir, domain.CacheInfoFile)
	if err := writeFileAtomic(filename, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".cache-info-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
