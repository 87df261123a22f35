package config

// Keys of the configuration file, the BOTTLED_ environment variables and the
// flag overrides.
const (
	keyEmberVersion    = "ember_version"
	keyCacheName       = "cache_name"
	keyCacheRoot       = "cache_root"
	keyTemplateOverlay = "template"
	keyLocalFiles      = "local_files"
	keyDeps            = "deps"
	keyLinks           = "links"
	keyOutputPath      = "output_path"
	keyPort            = "port"
	keyEnvironment     = "environment"
	keyFingerprint     = "fingerprint"
	keyLock            = "lock"
)

// Bottledfile represents the structure of the bottled configuration file.
type Bottledfile struct {
	EmberVersion    string   `koanf:"ember_version"`
	CacheName       string   `koanf:"cache_name"`
	CacheRoot       string   `koanf:"cache_root"`
	TemplateOverlay string   `koanf:"template"`
	LocalFiles      string   `koanf:"local_files"`
	Deps            []string `koanf:"deps"`
	Links           []string `koanf:"links"`
	OutputPath      string   `koanf:"output_path"`
	Port            *int     `koanf:"port"`
	Environment     string   `koanf:"environment"`
	Fingerprint     bool     `koanf:"fingerprint"`
	Lock            bool     `koanf:"lock"`
}
