// Package config provides configuration loading for fastapi-gen.
package config

// Config represents the fastapi-gen configuration.
// Loaded from ~/.fastapi-gen/config.yaml; every field is optional.
type Config struct {
	// Template is the default template when --template is omitted.
	// Env: FASTAPI_GEN_TEMPLATE, Default: "hello_world"
	Template string `mapstructure:"template"`

	// VCS controls the best-effort git repository initialization.
	// Env: FASTAPI_GEN_VCS, Default: true
	VCS *bool `mapstructure:"vcs"`

	// Verbose enables debug output by default.
	// Env: FASTAPI_GEN_VERBOSE, Default: false
	Verbose bool `mapstructure:"verbose"`
}

// VCSEnabled reports whether the git init step should run.
func (c *Config) VCSEnabled() bool {
	if c.VCS == nil {
		return true
	}
	return *c.VCS
}

// WithDefaults fills unset fields with built-in defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Template == "" {
		out.Template = DefaultTemplate
	}
	return &out
}

// DefaultTemplate is the template used when no other source names one.
const DefaultTemplate = "hello_world"
