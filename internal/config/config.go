// Package config provides configuration loading and management.
package config

// Built-in defaults applied when neither flags, environment, nor the
// config file supply a value. There is no default license on purpose: an
// unset license scaffolds proprietary projects without a LICENSE file.
const (
	DefaultAuthor = "Your Name"
	DefaultPython = "3.8"
)

// Config represents the pyforge CLI configuration.
// Loaded from ~/.pyforge/config.yaml with PYFORGE_* environment overrides.
type Config struct {
	// Author is the default author written into manifests and licenses.
	// Env: PYFORGE_AUTHOR
	Author string `mapstructure:"author"`

	// License is the default license identifier for new projects.
	// Env: PYFORGE_LICENSE
	License string `mapstructure:"license"`

	// Python is the default minimum interpreter version.
	// Env: PYFORGE_PYTHON
	Python string `mapstructure:"python"`

	// AlwaysVenv builds a virtual environment on every create unless the
	// flag overrides it.
	// Env: PYFORGE_ALWAYS_VENV
	AlwaysVenv bool `mapstructure:"always_venv"`

	// AlwaysCI attaches a CI workflow on every create unless the flag
	// overrides it.
	// Env: PYFORGE_ALWAYS_CI
	AlwaysCI bool `mapstructure:"always_ci"`
}

// WithDefaults returns a copy with unset fields filled from the built-in
// defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Author == "" {
		out.Author = DefaultAuthor
	}
	if out.Python == "" {
		out.Python = DefaultPython
	}
	return &out
}
