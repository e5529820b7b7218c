// Package scaffold lays out Python project trees from template kinds. The
// Orchestrator consumes one Request, reports structured progress events to
// a Sink, and ends in exactly one terminal state: completed or aborted.
package scaffold

// Request describes one scaffolding invocation, fully resolved by the
// front-end. It is consumed exactly once.
type Request struct {
	// Name is the project name. The root directory is named after it, and
	// so is the single subdirectory when only one kind is requested.
	Name string

	// Kinds lists the requested template kinds in creation order.
	Kinds []string

	// Dir is the directory the project root is created under. Empty means
	// the current directory.
	Dir string

	// License selects a license identifier. Empty means no license file
	// and a proprietary placeholder in rendered manifests. Identifiers
	// outside the built-in set still land in manifests; only known ones
	// produce a LICENSE file.
	License string

	// Author lands in license texts and rendered manifests.
	Author string

	// PyMin is the minimum interpreter version for manifests and the CI
	// matrix.
	PyMin string

	// Year is the copyright year, captured once at request construction.
	Year int

	// InitRepo initializes a repository in each kind subdirectory.
	InitRepo bool

	// WithTests ensures each kind has a tests/ package marker.
	WithTests bool

	// WithCI writes a workflow file into each kind subdirectory.
	WithCI bool

	// WithVenv builds a virtual environment in each kind subdirectory.
	WithVenv bool

	// DryRun reports every intended action without touching the
	// filesystem or spawning processes.
	DryRun bool

	// Remote is the repository remote URL. nil means no remote was given.
	// A pointer to the empty string means initialize only, no remote. A
	// non-empty value means initialize, attach the remote, and push.
	Remote *string
}

// VCSRequested reports whether repository initialization should run,
// either requested directly or implied by a remote.
func (r *Request) VCSRequested() bool {
	return r.InitRepo || r.Remote != nil
}

// PushRequested reports whether a remote should be attached and pushed.
func (r *Request) PushRequested() bool {
	return r.Remote != nil && *r.Remote != ""
}
