// Package config provides the layered options loader for bottled.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables overriding the config file.
const EnvPrefix = "BOTTLED_"

// ConfigFiles are the file names discovered in the working directory, in order.
var ConfigFiles = []string{"bottled.yaml", "bottled.yml", ".bottled.yaml", ".bottled.yml", "bottled.toml", ".bottled.toml"}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader with koanf.
// Layers, lowest first: defaults, config file, environment, overrides.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load resolves the options for a run started in cwd.
func (l *Loader) Load(cwd string, overrides domain.Overrides) (*domain.Options, error) {
	if cwd == "" {
		return nil, zerr.Wrap(domain.ErrMissingInvokerDir, "failed to load options")
	}
	invokerDir, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrMissingInvokerDir, err), "cwd", cwd)
	}

	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to load defaults")
	}

	// 2. Config file
	path, err := findConfigFile(invokerDir, overrides.ConfigPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to load environment")
	}

	// 4. Overrides
	if err := k.Load(confmap.Provider(overrideMap(overrides), "."), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to load overrides")
	}

	var cfg Bottledfile
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return toOptions(invokerDir, overrides.Command, &cfg)
}

func defaults() map[string]any {
	return map[string]any{
		keyEmberVersion: domain.DefaultEmberVersion,
		keyCacheName:    domain.DefaultCacheName,
		keyCacheRoot:    domain.DefaultCacheRoot(),
	}
}

// envKey maps BOTTLED_CACHE_NAME to cache_name. Empty values are ignored.
func envKey(key, value string) (string, any) {
	if value == "" {
		return "", nil
	}
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

func overrideMap(o domain.Overrides) map[string]any {
	m := make(map[string]any)
	setString := func(key string, v *string) {
		if v != nil {
			m[key] = *v
		}
	}
	setString(keyEmberVersion, o.EmberVersion)
	setString(keyCacheName, o.CacheName)
	setString(keyCacheRoot, o.CacheRoot)
	setString(keyTemplateOverlay, o.TemplateOverlay)
	setString(keyLocalFiles, o.LocalFiles)
	setString(keyOutputPath, o.OutputPath)
	setString(keyEnvironment, o.Environment)

	if len(o.Deps) > 0 {
		m[keyDeps] = o.Deps
	}
	if len(o.Links) > 0 {
		m[keyLinks] = o.Links
	}
	if o.Port != nil {
		m[keyPort] = *o.Port
	}
	if o.Fingerprint != nil {
		m[keyFingerprint] = *o.Fingerprint
	}
	if o.Lock != nil {
		m[keyLock] = *o.Lock
	}
	return m
}

// findConfigFile returns the explicit config path or the first discovered
// file in dir. An empty result means no config file is used.
func findConfigFile(dir, explicit string) (string, error) {
	if explicit != "" {
		path := resolvePath(dir, explicit)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to load config"), "path", path)
			}
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return path, nil
	}

	for _, name := range ConfigFiles {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, "failed to load config"), "path", path)
	}
}

func toOptions(invokerDir, command string, cfg *Bottledfile) (*domain.Options, error) {
	links, err := domain.ParseLinks(compact(cfg.Links))
	if err != nil {
		return nil, err
	}

	opts := &domain.Options{
		InvokerDir:      invokerDir,
		Command:         command,
		EmberVersion:    strings.TrimSpace(cfg.EmberVersion),
		CacheName:       strings.TrimSpace(cfg.CacheName),
		CacheRoot:       resolvePath(invokerDir, cfg.CacheRoot),
		TemplateOverlay: resolvePath(invokerDir, cfg.TemplateOverlay),
		LocalFiles:      resolvePath(invokerDir, cfg.LocalFiles),
		Deps:            unique(compact(cfg.Deps)),
		Links:           links,
		OutputPath:      strings.TrimSpace(cfg.OutputPath),
		Port:            cfg.Port,
		Environment:     strings.TrimSpace(cfg.Environment),
		Fingerprint:     cfg.Fingerprint,
		Lock:            cfg.Lock,
	}

	if opts.EmberVersion == "" {
		opts.EmberVersion = domain.DefaultEmberVersion
	}
	if opts.CacheName == "" {
		opts.CacheName = domain.DefaultCacheName
	}
	if opts.CacheRoot == "" {
		opts.CacheRoot = domain.DefaultCacheRoot()
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// resolvePath expands a leading ~ and makes p absolute relative to base.
func resolvePath(base, p string) string {
	p = strings.TrimSpace(p)
	switch {
	case p == "":
		return ""
	case p == "~":
		return xdg.Home
	case strings.HasPrefix(p, "~/"):
		return filepath.Join(xdg.Home, p[2:])
	case filepath.IsAbs(p):
		return filepath.Clean(p)
	default:
		return filepath.Join(base, p)
	}
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// unique drops repeated values and keeps first occurrences in order.
func unique(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
