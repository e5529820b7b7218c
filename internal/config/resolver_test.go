package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_FlagPrecedence(t *testing.T) {
	t.Setenv("PYFORGE_LICENSE", "Apache-2.0")

	result := Resolve(ResolveOptions{
		Key:         "license",
		FlagValue:   "MIT",
		FlagChanged: true,
		EnvVar:      "PYFORGE_LICENSE",
		ConfigValue: "GPL-3.0",
		Default:     "",
	})

	assert.Equal(t, "MIT", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "Apache-2.0", result.Shadowed[SourceEnv])
	assert.Equal(t, "GPL-3.0", result.Shadowed[SourceConfig])
}

func TestResolve_ExplicitEmptyFlagWins(t *testing.T) {
	// --license= clears a configured license for one run.
	result := Resolve(ResolveOptions{
		Key:         "license",
		FlagValue:   "",
		FlagChanged: true,
		ConfigValue: "MIT",
	})

	assert.Empty(t, result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "MIT", result.Shadowed[SourceConfig])
}

func TestResolve_EnvPrecedence(t *testing.T) {
	t.Setenv("PYFORGE_AUTHOR", "Env Author")

	result := Resolve(ResolveOptions{
		Key:         "author",
		FlagValue:   "",
		FlagChanged: false,
		EnvVar:      "PYFORGE_AUTHOR",
		ConfigValue: "Config Author",
		Default:     DefaultAuthor,
	})

	assert.Equal(t, "Env Author", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "Config Author", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolve_ConfigFallback(t *testing.T) {
	t.Setenv("PYFORGE_AUTHOR", "")

	result := Resolve(ResolveOptions{
		Key:         "author",
		EnvVar:      "PYFORGE_AUTHOR",
		ConfigValue: "Config Author",
		Default:     DefaultAuthor,
	})

	assert.Equal(t, "Config Author", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolve_Default(t *testing.T) {
	t.Setenv("PYFORGE_PYTHON", "")

	result := Resolve(ResolveOptions{
		Key:     "python",
		EnvVar:  "PYFORGE_PYTHON",
		Default: DefaultPython,
	})

	assert.Equal(t, DefaultPython, result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolve_EmptyDefault(t *testing.T) {
	result := Resolve(ResolveOptions{
		Key: "license",
	})

	assert.Empty(t, result.Value)
	assert.Equal(t, SourceDefault, result.Source)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "flag", string(SourceFlag))
	assert.Equal(t, "env", string(SourceEnv))
	assert.Equal(t, "config", string(SourceConfig))
	assert.Equal(t, "default", string(SourceDefault))
}
