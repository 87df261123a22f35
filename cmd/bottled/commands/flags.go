package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bottled/internal/core/domain"
)

const (
	flagConfig       = "config"
	flagEmberVersion = "ember-version"
	flagCacheName    = "cache-name"
	flagCacheRoot    = "cache-root"
	flagTemplate     = "template"
	flagLocalFiles   = "local-files"
	flagDep          = "dep"
	flagLink         = "link"
	flagOutputPath   = "output-path"
	flagPort         = "port"
	flagEnvironment  = "environment"
	flagFingerprint  = "fingerprint"
	flagLock         = "lock"
)

// addOptionFlags registers the option flags shared by every command.
func addOptionFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringP(flagConfig, "c", "", "Path to a config file (default: bottled.yaml in the working directory)")
	f.String(flagEmberVersion, "", "ember-cli version used to generate the app (default \"latest\")")
	f.String(flagCacheName, "", "Name of the cache, to keep several apps per version (default \"default\")")
	f.String(flagCacheRoot, "", "Directory holding all bottled apps")
	f.String(flagTemplate, "", "Directory copied over the generated app instead of the default customizations")
	f.String(flagLocalFiles, "", "Directory copied over the generated app after the template")
	f.StringSlice(flagDep, nil, "Extra dependency to install into the app (repeatable)")
	f.StringArray(flagLink, nil, "Link 'path' or 'source:destination' into the app (repeatable)")
	f.String(flagOutputPath, "", "Build output directory (default \"dist\")")
	f.Int(flagPort, 0, "Port passed to the ember command")
	f.StringP(flagEnvironment, "e", "", "Environment passed to the ember command")
	f.Bool(flagFingerprint, false, "Rebuild the app when its inputs changed")
	f.Bool(flagLock, false, "Serialize app setup across concurrent bottled processes")
}

// overrides collects the flags the user set explicitly.
func (c *CLI) overrides(cmd *cobra.Command) (domain.Overrides, error) {
	f := cmd.Flags()
	var o domain.Overrides
	var err error

	if o.ConfigPath, err = f.GetString(flagConfig); err != nil {
		return o, err
	}

	stringFlags := []struct {
		name   string
		target **string
	}{
		{flagEmberVersion, &o.EmberVersion},
		{flagCacheName, &o.CacheName},
		{flagCacheRoot, &o.CacheRoot},
		{flagTemplate, &o.TemplateOverlay},
		{flagLocalFiles, &o.LocalFiles},
		{flagOutputPath, &o.OutputPath},
		{flagEnvironment, &o.Environment},
	}
	for _, sf := range stringFlags {
		if !f.Changed(sf.name) {
			continue
		}
		v, err := f.GetString(sf.name)
		if err != nil {
			return o, err
		}
		*sf.target = &v
	}

	if f.Changed(flagDep) {
		if o.Deps, err = f.GetStringSlice(flagDep); err != nil {
			return o, err
		}
	}
	if f.Changed(flagLink) {
		if o.Links, err = f.GetStringArray(flagLink); err != nil {
			return o, err
		}
	}

	if f.Changed(flagPort) {
		port, err := f.GetInt(flagPort)
		if err != nil {
			return o, err
		}
		o.Port = &port
	}

	boolFlags := []struct {
		name   string
		target **bool
	}{
		{flagFingerprint, &o.Fingerprint},
		{flagLock, &o.Lock},
	}
	for _, bf := range boolFlags {
		if !f.Changed(bf.name) {
			continue
		}
		v, err := f.GetBool(bf.name)
		if err != nil {
			return o, err
		}
		*bf.target = &v
	}

	return o, nil
}
