package domain

// Overrides carries values given on the command line.
// Nil fields were not set and do not override lower layers.
type Overrides struct {
	// ConfigPath is an explicit config file, empty means discovery.
	ConfigPath string
	// Command is the positional subcommand.
	Command string

	EmberVersion    *string
	CacheName       *string
	CacheRoot       *string
	TemplateOverlay *string
	LocalFiles      *string
	Deps            []string
	Links           []string
	OutputPath      *string
	Port            *int
	Environment     *string
	Fingerprint     *bool
	Lock            *bool
}
