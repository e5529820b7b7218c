package templates

import (
	"strconv"
	"strings"
)

// ProprietaryLicense is the license placeholder value substituted into
// rendered content when no license was selected.
const ProprietaryLicense = "Proprietary"

// Context maps placeholder names to resolved string values for one kind of
// one scaffold request.
type Context map[string]string

// ContextParams carries the inputs of BuildContext.
type ContextParams struct {
	// Project is the root project name as given in the request.
	Project string

	// Kind is the template kind this context renders.
	Kind string

	// KindCount is the total number of kinds in the request; names are
	// kind-qualified when it is greater than one.
	KindCount int

	// LicenseID is the selected license identifier, or empty for none.
	LicenseID string

	// Author is the author name used in licenses and manifests.
	Author string

	// PyMin is the minimum Python version (e.g. "3.8").
	PyMin string

	// Year is the copyright year, captured once at request construction.
	Year int
}

// BuildContext derives the substitution variables for one kind. It is pure
// and total: any syntactically reasonable input yields a complete context.
//
// With a single requested kind the display name is the project name itself;
// with several, each kind gets a qualified name ("{project}-{kind}").
// Package and module names normalize hyphens to underscores so they are
// importable; the CLI name normalizes underscores to hyphens so it is a
// clean command token.
func BuildContext(p ContextParams) Context {
	name := p.Project
	base := p.Project
	if p.KindCount > 1 {
		name = p.Project + "-" + p.Kind
		base = p.Project + "_" + p.Kind
	}

	packageName := strings.ReplaceAll(base, "-", "_")

	licenseID := p.LicenseID
	if licenseID == "" {
		licenseID = ProprietaryLicense
	}

	return Context{
		"name":         name,
		"package_name": packageName,
		"module_path":  packageName,
		"cli_name":     strings.ReplaceAll(name, "_", "-"),
		"license_id":   licenseID,
		"py_min":       p.PyMin,
		"year":         strconv.Itoa(p.Year),
		"author":       p.Author,
	}
}
