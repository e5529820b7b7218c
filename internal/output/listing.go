package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// KindEntry describes one template kind in the listing.
type KindEntry struct {
	Kind        string   `json:"kind" yaml:"kind"`
	Description string   `json:"description" yaml:"description"`
	Files       []string `json:"files" yaml:"files"`
}

// KindListing is the templates listing document.
type KindListing struct {
	Kinds    []KindEntry `json:"kinds" yaml:"kinds"`
	Licenses []string    `json:"licenses,omitempty" yaml:"licenses,omitempty"`
}

// ListingOptions controls template listing output.
type ListingOptions struct {
	// Format specifies output format: "table", "yaml" or "json"
	Format OutputFormat
	// Writer is the output destination
	Writer io.Writer
}

// WriteKindListing writes the template kind listing in the specified format.
// Kinds are sorted for deterministic output.
func WriteKindListing(listing KindListing, opts ListingOptions) error {
	sort.Slice(listing.Kinds, func(i, j int) bool {
		return listing.Kinds[i].Kind < listing.Kinds[j].Kind
	})

	switch opts.Format {
	case FormatJSON:
		return writeListingJSON(listing, opts.Writer)
	case FormatYAML:
		return writeListingYAML(listing, opts.Writer)
	case FormatTable:
		return writeListingTable(listing, opts.Writer)
	}
	return writeListingTable(listing, opts.Writer) // Default to table
}

func writeListingTable(listing KindListing, w io.Writer) error {
	rows := make([]KindRow, len(listing.Kinds))
	for i, e := range listing.Kinds {
		rows[i] = KindRow{Kind: e.Kind, Description: e.Description}
	}

	if _, err := fmt.Fprintln(w, RenderKindTable(rows)); err != nil {
		return err
	}
	if len(listing.Licenses) > 0 {
		_, err := fmt.Fprintf(w, "\nLicenses: %s\n", strings.Join(listing.Licenses, ", "))
		return err
	}
	return nil
}

// writeListingYAML writes the listing as a single YAML document.
func writeListingYAML(listing KindListing, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(listing); err != nil {
		return fmt.Errorf("encoding listing: %w", err)
	}

	return encoder.Close()
}

// writeListingJSON writes the listing as a JSON object.
func writeListingJSON(listing KindListing, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(listing); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}
