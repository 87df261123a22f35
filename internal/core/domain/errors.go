package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidLink is returned when a link declaration has an empty source or destination.
	ErrInvalidLink = zerr.New("invalid link, expected 'path' or 'source:destination'")

	// ErrInvalidPort is returned when the configured port is outside 0-65535.
	ErrInvalidPort = zerr.New("invalid port")

	// ErrInvalidCacheName is returned when the cache name cannot produce a cache key.
	ErrInvalidCacheName = zerr.New("invalid cache name")

	// ErrMissingInvokerDir is returned when options are resolved without a working directory.
	ErrMissingInvokerDir = zerr.New("invoker directory is not set")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrUnsupportedConfigFormat is returned when the config file extension is unknown.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config file format, expected .yaml, .yml or .toml")

	// ErrCacheRootCreateFailed is returned when the cache root directory cannot be created.
	ErrCacheRootCreateFailed = zerr.New("failed to create cache root directory")

	// ErrCacheStatFailed is returned when the cache directory cannot be inspected.
	ErrCacheStatFailed = zerr.New("failed to inspect cache directory")

	// ErrCacheRemoveFailed is returned when a cache directory cannot be removed.
	ErrCacheRemoveFailed = zerr.New("failed to remove cache directory")

	// ErrScaffoldFailed is returned when generating the bottled app fails.
	ErrScaffoldFailed = zerr.New("failed to build bottled app")

	// ErrStagingCreateFailed is returned when the staging directory cannot be prepared.
	ErrStagingCreateFailed = zerr.New("failed to prepare staging directory")

	// ErrPromoteFailed is returned when a staged scaffold cannot be moved into place.
	ErrPromoteFailed = zerr.New("failed to move staged app into cache")

	// ErrCustomizeFailed is returned when applying template or local files fails.
	ErrCustomizeFailed = zerr.New("failed to customize bottled app")

	// ErrLinkFailed is returned when a link cannot be reconciled.
	ErrLinkFailed = zerr.New("failed to link file into bottled app")

	// ErrDependencyInstallFailed is returned when installing extra dependencies fails.
	ErrDependencyInstallFailed = zerr.New("failed to install dependencies")

	// ErrManifestReadFailed is returned when the cache manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when the cache manifest is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrDelegatedCommandFailed is returned when the delegated framework command fails.
	ErrDelegatedCommandFailed = zerr.New("delegated command failed")

	// ErrCommandStartFailed is returned when a subprocess cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrStoreReadFailed is returned when the cache info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache info")

	// ErrStoreUnmarshalFailed is returned when the cache info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache info")

	// ErrStoreMarshalFailed is returned when the cache info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache info")

	// ErrStoreWriteFailed is returned when the cache info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache info")

	// ErrFingerprintFailed is returned when the cache fingerprint cannot be computed.
	ErrFingerprintFailed = zerr.New("failed to compute cache fingerprint")

	// ErrLockFailed is returned when the cache lock cannot be acquired.
	ErrLockFailed = zerr.New("failed to acquire cache lock")
)
