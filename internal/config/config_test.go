package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaults(t *testing.T) {
	cfg := Config{}
	got := cfg.WithDefaults()

	assert.Equal(t, DefaultAuthor, got.Author)
	assert.Equal(t, DefaultPython, got.Python)

	// License has no default. An unset license means projects are
	// scaffolded as proprietary without a LICENSE file.
	assert.Empty(t, got.License)
	assert.False(t, got.AlwaysVenv)
	assert.False(t, got.AlwaysCI)
}

func TestWithDefaults_PreservesSetValues(t *testing.T) {
	cfg := Config{
		Author:     "Jane Doe",
		License:    "MIT",
		Python:     "3.11",
		AlwaysVenv: true,
		AlwaysCI:   true,
	}
	got := cfg.WithDefaults()

	assert.Equal(t, "Jane Doe", got.Author)
	assert.Equal(t, "MIT", got.License)
	assert.Equal(t, "3.11", got.Python)
	assert.True(t, got.AlwaysVenv)
	assert.True(t, got.AlwaysCI)
}

func TestWithDefaults_DoesNotMutateReceiver(t *testing.T) {
	cfg := Config{}
	_ = cfg.WithDefaults()

	assert.Empty(t, cfg.Author)
	assert.Empty(t, cfg.Python)
}
