package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const maxPort = 65535

// Options is the resolved configuration of a single run.
// It is produced once by the config loader and never mutated afterwards.
type Options struct {
	// InvokerDir is the absolute directory bottled was started from.
	InvokerDir string `yaml:"invoker_dir"`
	// Command is the delegated subcommand, empty means DefaultCommand.
	Command         string   `yaml:"command,omitempty"`
	EmberVersion    string   `yaml:"ember_version"`
	CacheName       string   `yaml:"cache_name"`
	CacheRoot       string   `yaml:"cache_root"`
	TemplateOverlay string   `yaml:"template,omitempty"`
	LocalFiles      string   `yaml:"local_files,omitempty"`
	Deps            []string `yaml:"deps,omitempty"`
	Links           []Link   `yaml:"links,omitempty"`
	OutputPath      string   `yaml:"output_path,omitempty"`
	// Port is nil when unset. Zero is a valid port.
	Port        *int   `yaml:"port,omitempty"`
	Environment string `yaml:"environment,omitempty"`
	// Fingerprint enables rebuilding the cache when its recorded fingerprint differs.
	Fingerprint bool `yaml:"fingerprint"`
	// Lock serializes cache setup across processes.
	Lock bool `yaml:"lock"`
}

// CacheKey identifies the scaffold variant. Equal inputs always yield equal keys.
func (o *Options) CacheKey() string {
	return sanitizeKeyPart(o.EmberVersion) + "-" + sanitizeKeyPart(o.CacheName)
}

// CacheDir returns the directory of the bottled app for these options.
func (o *Options) CacheDir() string {
	return filepath.Join(o.CacheRoot, o.CacheKey())
}

// LockPath returns the lock file guarding the cache directory.
func (o *Options) LockPath() string {
	return filepath.Join(o.CacheRoot, o.CacheKey()+LockSuffix)
}

// StagingDir returns a sibling of the cache directory used while building it.
func (o *Options) StagingDir(id string) string {
	return filepath.Join(o.CacheRoot, "."+o.CacheKey()+StagingInfix+id)
}

// Subcommand returns the delegated subcommand.
func (o *Options) Subcommand() string {
	if o.Command == "" {
		return DefaultCommand
	}
	return o.Command
}

// ResolvedOutputPath returns the absolute build output directory.
func (o *Options) ResolvedOutputPath() string {
	switch {
	case o.OutputPath == "":
		return filepath.Join(o.InvokerDir, DefaultOutputDir)
	case filepath.IsAbs(o.OutputPath):
		return filepath.Clean(o.OutputPath)
	default:
		return filepath.Join(o.InvokerDir, o.OutputPath)
	}
}

// Validate checks the invariants the rest of the pipeline relies on.
func (o *Options) Validate() error {
	if o.InvokerDir == "" || !filepath.IsAbs(o.InvokerDir) {
		return zerr.With(zerr.Wrap(ErrMissingInvokerDir, "invalid options"), "invoker_dir", o.InvokerDir)
	}
	if sanitizeKeyPart(o.CacheName) == "" || sanitizeKeyPart(o.EmberVersion) == "" {
		return zerr.With(zerr.Wrap(ErrInvalidCacheName, "invalid options"), "cache_name", o.CacheName)
	}
	if o.Port != nil && (*o.Port < 0 || *o.Port > maxPort) {
		return zerr.With(zerr.Wrap(ErrInvalidPort, "invalid options"), "port", *o.Port)
	}
	return nil
}

// sanitizeKeyPart keeps characters that are safe in a single path element.
func sanitizeKeyPart(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}
