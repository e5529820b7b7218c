// Package templates provides the built-in project template catalog, the
// substitution context builder, and the renderer that turns a template plus
// a context into concrete file and directory instructions.
package templates

import "sort"

// File is one entry of a template: a relative path pattern mapped to a
// content pattern. Both may contain {placeholder} tokens. A path ending in
// "/" denotes a directory; empty content without the trailing slash means
// "create an empty file".
type File struct {
	Path    string
	Content string
}

// Template is the static file set for one project kind.
type Template struct {
	// Kind is the template identifier (library, cli, flask, ...).
	Kind string

	// Description explains the template's purpose in listings.
	Description string

	// Files holds the path/content patterns in declared order. Rendering
	// and materialization preserve this order.
	Files []File
}

// Get returns the template for a kind, reporting whether it exists.
func Get(kind string) (Template, bool) {
	t, ok := templates[kind]
	return t, ok
}

// IsValid reports whether a kind exists in the catalog.
func IsValid(kind string) bool {
	_, ok := templates[kind]
	return ok
}

// Names returns all kind identifiers, sorted.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all templates sorted by kind.
func List() []Template {
	list := make([]Template, 0, len(templates))
	for _, name := range Names() {
		list = append(list, templates[name])
	}
	return list
}
