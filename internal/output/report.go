package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyforge/cli/internal/scaffold"
)

// Reporter renders scaffold progress events for the terminal. It implements
// scaffold.Sink and accumulates the created paths so the command layer can
// print a file tree afterwards. Events arrive from a single goroutine.
type Reporter struct {
	// Writer is the destination for path and summary lines. Defaults to
	// stdout; warnings and debug traces go through the logger instead.
	Writer io.Writer

	root    string
	verbose bool

	paths    []string
	descs    map[string]string
	warnings int
	dryRun   bool
}

// NewSink returns a Reporter for a scaffolding run rooted at root.
func NewSink(root string, verbose bool) *Reporter {
	return &Reporter{
		Writer:  os.Stdout,
		root:    root,
		verbose: verbose,
		descs:   make(map[string]string),
	}
}

// Emit renders one orchestration event.
func (r *Reporter) Emit(e scaffold.Event) {
	if r.verbose {
		Debug("scaffold event",
			"type", e.Type,
			"path", e.Path,
			"kind", e.Kind,
			"step", e.Step,
		)
	}

	switch e.Type {
	case scaffold.EventCreatedFile:
		r.record(e, false)
		fmt.Fprintln(r.Writer, FormatPathLine(r.display(e.Path, false), StatusCreated))

	case scaffold.EventCreatedDir:
		r.record(e, true)
		fmt.Fprintln(r.Writer, FormatPathLine(r.display(e.Path, true), StatusCreated))

	case scaffold.EventDryRunFile:
		r.dryRun = true
		r.record(e, false)
		r.planned(r.display(e.Path, false), e.Detail)

	case scaffold.EventDryRunDir:
		r.dryRun = true
		r.record(e, true)
		r.planned(r.display(e.Path, true), e.Detail)

	case scaffold.EventWarning:
		r.warnings++
		Warn(e.Detail, "kind", e.Kind, "step", e.Step)

	case scaffold.EventAborted:
		Error("scaffolding aborted", "path", e.Path, "reason", e.Detail)

	case scaffold.EventCompleted:
		r.completed(e)
	}
}

// Warnings reports how many warning events were seen.
func (r *Reporter) Warnings() int {
	return r.warnings
}

// Tree renders the recorded paths as a file tree rooted at the project
// directory. Returns "" when nothing was recorded.
func (r *Reporter) Tree() string {
	if len(r.paths) == 0 {
		return ""
	}

	files := make(map[string]string, len(r.paths))
	for _, p := range r.paths {
		files[p] = r.descs[p]
	}

	return RenderFileTree(filepath.Base(r.root), files)
}

func (r *Reporter) planned(display, detail string) {
	fmt.Fprintln(r.Writer, StyleDim.Render("[dry-run] ")+FormatPathLine(display, StatusPlanned))
	if detail != "" {
		fmt.Fprintln(r.Writer, StyleDim.Render("          would run: "+detail))
	}
}

func (r *Reporter) completed(e scaffold.Event) {
	msg := fmt.Sprintf("created %s (%s)", StyleNoun.Render(e.Path), e.Detail)
	if r.dryRun {
		msg = fmt.Sprintf("dry run complete for %s (%s); no files were written",
			StyleNoun.Render(e.Path), e.Detail)
	}
	if r.warnings > 0 {
		msg += StyleDim.Render(fmt.Sprintf(" with %d warning(s)", r.warnings))
	}

	fmt.Fprintln(r.Writer)
	fmt.Fprintln(r.Writer, FormatCheckmark(msg))
}

// record remembers a path for the final tree. The project root itself is
// excluded; the tree renders it as the heading.
func (r *Reporter) record(e scaffold.Event, isDir bool) {
	rel := r.rel(e.Path)
	if rel == "" {
		return
	}
	if isDir {
		rel += "/"
	}
	if _, seen := r.descs[rel]; seen {
		return
	}

	r.paths = append(r.paths, rel)
	r.descs[rel] = stepDescription(e.Step)
}

// display returns the path as shown on a progress line, root-relative when
// possible. Directories carry a trailing slash.
func (r *Reporter) display(path string, isDir bool) string {
	rel := r.rel(path)
	if rel == "" {
		rel = filepath.Base(path)
	}
	if isDir {
		rel += "/"
	}
	return rel
}

// rel converts an event path to a root-relative one. Returns "" for the
// root itself or paths outside it.
func (r *Reporter) rel(path string) string {
	if r.root == "" {
		return path
	}

	rel, err := filepath.Rel(r.root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.ToSlash(rel)
}

func stepDescription(step string) string {
	switch step {
	case "git":
		return "git repository"
	case "venv":
		return "virtual environment"
	default:
		return ""
	}
}
