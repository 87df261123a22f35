package domain

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory created under the user cache home.
	AppDirName = "bottled"

	// ManifestFile is the package manifest owned by the bottled app.
	ManifestFile = "package.json"

	// ApplicationTemplate is the generated template removed after scaffolding.
	ApplicationTemplate = "app/templates/application.hbs"

	// CacheInfoFile records how a cache was built.
	CacheInfoFile = ".bottled.json"

	// LockSuffix is appended to the cache key to name its lock file.
	LockSuffix = ".lock"

	// StagingInfix separates the cache key from the staging id.
	StagingInfix = ".staging-"

	// FrameworkBinary is the delegated framework CLI.
	FrameworkBinary = "ember"

	// GeneratorPackage is the npm package providing the project generator.
	GeneratorPackage = "ember-cli"

	// Runner executes package binaries.
	Runner = "npx"

	// PackageManager installs dependencies into the bottled app.
	PackageManager = "pnpm"

	// DefaultEmberVersion is used when no framework version is configured.
	DefaultEmberVersion = "latest"

	// DefaultCacheName is used when no cache name is configured.
	DefaultCacheName = "default"

	// DefaultCommand is the delegated subcommand when none is given.
	DefaultCommand = "serve"

	// DefaultOutputDir is joined to the invoker directory when no output path is set.
	DefaultOutputDir = "dist"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// InterruptGracePeriod is how long a subprocess may take to exit after an interrupt.
	InterruptGracePeriod = 5 * time.Second

	// LockRetryDelay is the polling interval while waiting for a cache lock.
	LockRetryDelay = 200 * time.Millisecond
)

// DefaultCacheRoot returns the directory holding all bottled apps.
func DefaultCacheRoot() string {
	return filepath.Join(xdg.CacheHome, AppDirName)
}
