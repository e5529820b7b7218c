package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testListing() KindListing {
	return KindListing{
		Kinds: []KindEntry{
			{Kind: "library", Description: "Python library package", Files: []string{"pyproject.toml", "README.md"}},
			{Kind: "cli", Description: "Command-line application", Files: []string{"pyproject.toml"}},
		},
		Licenses: []string{"Apache-2.0", "MIT"},
	}
}

func TestWriteKindListingJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteKindListing(testListing(), ListingOptions{Format: FormatJSON, Writer: &buf})
	require.NoError(t, err)

	var decoded KindListing
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Kinds, 2)
	assert.Equal(t, "cli", decoded.Kinds[0].Kind)
	assert.Equal(t, "library", decoded.Kinds[1].Kind)
	assert.Equal(t, []string{"pyproject.toml", "README.md"}, decoded.Kinds[1].Files)
	assert.Equal(t, []string{"Apache-2.0", "MIT"}, decoded.Licenses)
}

func TestWriteKindListingYAML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteKindListing(testListing(), ListingOptions{Format: FormatYAML, Writer: &buf})
	require.NoError(t, err)

	var decoded KindListing
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Kinds, 2)
	assert.Equal(t, "cli", decoded.Kinds[0].Kind)
	assert.Equal(t, "Command-line application", decoded.Kinds[0].Description)
	assert.Equal(t, []string{"Apache-2.0", "MIT"}, decoded.Licenses)
}

func TestWriteKindListingTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteKindListing(testListing(), ListingOptions{Format: FormatTable, Writer: &buf})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "library")
	assert.Contains(t, out, "cli")
	assert.Contains(t, out, "Licenses: Apache-2.0, MIT")
}

func TestWriteKindListingTableWithoutLicenses(t *testing.T) {
	var buf bytes.Buffer
	listing := KindListing{Kinds: []KindEntry{{Kind: "library"}}}
	err := WriteKindListing(listing, ListingOptions{Format: FormatTable, Writer: &buf})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "Licenses:")
}

func TestWriteKindListingSortsKinds(t *testing.T) {
	var buf bytes.Buffer
	listing := KindListing{
		Kinds: []KindEntry{
			{Kind: "flask"},
			{Kind: "aws-lambda"},
			{Kind: "cli"},
		},
	}
	err := WriteKindListing(listing, ListingOptions{Format: FormatJSON, Writer: &buf})
	require.NoError(t, err)

	var decoded KindListing
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "aws-lambda", decoded.Kinds[0].Kind)
	assert.Equal(t, "cli", decoded.Kinds[1].Kind)
	assert.Equal(t, "flask", decoded.Kinds[2].Kind)
}
