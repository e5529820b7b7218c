package templates

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicenseIDs(t *testing.T) {
	ids := LicenseIDs()

	assert.Len(t, ids, 9)
	assert.True(t, sort.StringsAreSorted(ids), "LicenseIDs should be sorted")

	for _, want := range []string{
		"MIT", "Apache-2.0", "GPL-3.0", "BSD-2-Clause", "BSD-3-Clause",
		"MPL-2.0", "LGPL-3.0", "Unlicense", "CC0-1.0",
	} {
		assert.Contains(t, ids, want)
	}
}

func TestGetLicense(t *testing.T) {
	lic, ok := GetLicense("MIT")
	require.True(t, ok)
	assert.Equal(t, "MIT", lic.ID)
	assert.Contains(t, lic.Text, "MIT License")

	_, ok = GetLicense("WTFPL")
	assert.False(t, ok)

	_, ok = GetLicense(ProprietaryLicense)
	assert.False(t, ok, "proprietary fallback has no license text")
}

func TestLicenseRender(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want []string
	}{
		{"MIT fills copyright line", "MIT", []string{"Copyright (c) 2026 Jane Doe"}},
		{"GPL uses capital C", "GPL-3.0", []string{"Copyright (C) 2026 Jane Doe"}},
		{"BSD separates with comma", "BSD-2-Clause", []string{"Copyright (c) 2026, Jane Doe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lic, ok := GetLicense(tt.id)
			require.True(t, ok)

			got, err := lic.Render("2026", "Jane Doe")
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestLicenseRenderLeavesNoPlaceholders(t *testing.T) {
	for _, id := range LicenseIDs() {
		t.Run(id, func(t *testing.T) {
			lic, ok := GetLicense(id)
			require.True(t, ok)

			got, err := lic.Render("2026", "Jane Doe")
			require.NoError(t, err)
			assert.NotContains(t, got, "{year}")
			assert.NotContains(t, got, "{author}")
		})
	}
}
