package config

import (
	"os"

	"github.com/pyforge/cli/internal/output"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates the value came from the config file.
	SourceConfig Source = "config"
	// SourceDefault indicates the value is the built-in default.
	SourceDefault Source = "default"
)

// ResolveOptions describes one setting's candidates across sources.
type ResolveOptions struct {
	// Key names the setting in debug output.
	Key string
	// FlagValue is the flag's value, meaningful when FlagChanged.
	FlagValue string
	// FlagChanged reports whether the flag was set explicitly. An
	// explicitly empty flag still wins, which is how an empty license is
	// selected over a configured one.
	FlagChanged bool
	// EnvVar is the environment variable to consult.
	EnvVar string
	// ConfigValue is the value from the config file, empty if unset.
	ConfigValue string
	// Default is the built-in fallback.
	Default string
}

// ResolvedValue is one setting with the source that supplied it and the
// values that source shadowed.
type ResolvedValue struct {
	// Key names the setting.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where the value came from.
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]string
}

// Resolve picks a setting's value using precedence:
// (1) explicit flag, (2) environment, (3) config file, (4) default.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[Source]string),
	}

	envValue := ""
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	switch {
	case opts.FlagChanged:
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
	case opts.ConfigValue != "":
		result.Value = opts.ConfigValue
		result.Source = SourceConfig
	default:
		result.Value = opts.Default
		result.Source = SourceDefault
	}

	return result
}

// LogResolvedValues logs configuration resolution at DEBUG level when
// verbose output is enabled.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
