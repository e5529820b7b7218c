package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/exec"
	"github.com/pyforge/cli/internal/git"
	"github.com/pyforge/cli/internal/templates"
	"github.com/pyforge/cli/internal/venv"
	"github.com/pyforge/cli/internal/workflow"
)

// Result summarizes a completed run.
type Result struct {
	// Root is the project root the run laid out.
	Root string

	// Kinds lists the kinds actually created under the root, in request
	// order. A kind skipped over a template defect is absent.
	Kinds []string
}

// Orchestrator executes scaffold requests. It holds no state between runs.
type Orchestrator struct {
	runner exec.Runner
	sink   Sink
}

// New returns an Orchestrator that spawns external tools through runner
// and reports progress to sink. A nil sink discards events.
func New(runner exec.Runner, sink Sink) *Orchestrator {
	return &Orchestrator{runner: runner, sink: sink}
}

// Run executes one request to a terminal state. The returned error is nil
// exactly when the run completed. Validation rejections and filesystem
// write failures abort; external tool failures and template defects
// surface as warning events and never abort.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	kinds, err := o.validate(req)
	if err != nil {
		return Result{}, err
	}

	root := filepath.Join(req.Dir, req.Name)
	if !req.DryRun {
		if _, err := os.Stat(root); err == nil {
			o.emit(Event{Type: EventAborted, Path: root, Detail: "project root already exists"})
			return Result{}, oerrors.NewValidationError(
				fmt.Sprintf("target %q already exists", root),
				root,
				"name",
				"Choose another project name or remove the existing directory.",
			)
		}
	}

	if err := o.makeRoot(req, root, kinds); err != nil {
		return Result{}, err
	}

	created := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		ok, err := o.scaffoldKind(ctx, req, root, kind, len(kinds))
		if err != nil {
			return Result{}, err
		}
		if ok {
			created = append(created, kind)
		}
	}

	o.emit(Event{Type: EventCompleted, Path: root, Detail: strings.Join(created, ", ")})
	return Result{Root: root, Kinds: created}, nil
}

// validate lowercases the requested kinds and rejects empty, unknown, and
// duplicated entries before anything touches the filesystem.
func (o *Orchestrator) validate(req Request) ([]string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, o.abortInvalid("", "name",
			"project name must not be empty",
			"Pass a project name, for example: pyforge create acme --kinds library")
	}
	if len(req.Kinds) == 0 {
		return nil, o.abortInvalid("", "kinds",
			"at least one template kind is required",
			"Known kinds: "+strings.Join(templates.Names(), ", "))
	}

	kinds := make([]string, len(req.Kinds))
	for i, k := range req.Kinds {
		kinds[i] = strings.ToLower(strings.TrimSpace(k))
	}

	seen := make(map[string]bool, len(kinds))
	var unknown, duplicated []string
	for _, k := range kinds {
		if seen[k] {
			duplicated = append(duplicated, k)
			continue
		}
		seen[k] = true
		if !templates.IsValid(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		return nil, o.abortInvalid("", "kinds",
			"unknown template kinds: "+strings.Join(unknown, ", "),
			"Known kinds: "+strings.Join(templates.Names(), ", "))
	}
	if len(duplicated) > 0 {
		return nil, o.abortInvalid("", "kinds",
			"duplicated template kinds: "+strings.Join(duplicated, ", "),
			"Each kind may appear at most once.")
	}
	return kinds, nil
}

func (o *Orchestrator) abortInvalid(location, field, message, hint string) error {
	o.emit(Event{Type: EventAborted, Path: location, Detail: message})
	return oerrors.NewValidationError(message, location, field, hint)
}

// makeRoot creates the project root and its top-level readme.
func (o *Orchestrator) makeRoot(req Request, root string, kinds []string) error {
	readme := filepath.Join(root, "README.md")
	content := fmt.Sprintf("# %s\n\nMonorepo created by pyforge. Contains: %s\n",
		req.Name, strings.Join(kinds, ", "))

	if req.DryRun {
		o.emit(Event{Type: EventDryRunDir, Path: root})
		o.emit(Event{Type: EventDryRunFile, Path: readme})
		return nil
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return o.abortWrite("create project root", root, err)
	}
	o.emit(Event{Type: EventCreatedDir, Path: root})

	if err := writeFile(readme, content); err != nil {
		return o.abortWrite("write top-level readme", readme, err)
	}
	o.emit(Event{Type: EventCreatedFile, Path: readme})
	return nil
}

// scaffoldKind lays out one kind subdirectory with its extras. It reports
// whether the kind was actually created; a template defect skips the kind
// without failing the run.
func (o *Orchestrator) scaffoldKind(ctx context.Context, req Request, root, kind string, kindCount int) (bool, error) {
	subdirName := req.Name
	if kindCount > 1 {
		subdirName = kind
	}
	subdir := filepath.Join(root, subdirName)

	tpl, _ := templates.Get(kind)
	vars := templates.BuildContext(templates.ContextParams{
		Project:   req.Name,
		Kind:      kind,
		KindCount: kindCount,
		LicenseID: req.License,
		Author:    req.Author,
		PyMin:     req.PyMin,
		Year:      req.Year,
	})

	instructions, err := templates.Render(tpl, vars)
	if err != nil {
		o.warn(kind, "render", err)
		return false, nil
	}

	if req.DryRun {
		o.emit(Event{Type: EventDryRunDir, Path: subdir, Kind: kind})
	} else {
		if err := os.MkdirAll(subdir, 0o755); err != nil {
			return false, o.abortWrite("create kind directory", subdir, err)
		}
		o.emit(Event{Type: EventCreatedDir, Path: subdir, Kind: kind})
	}

	for _, inst := range instructions {
		if err := o.materialize(req, subdir, kind, inst); err != nil {
			return false, err
		}
	}

	if err := o.writeLicense(req, subdir, kind); err != nil {
		return false, err
	}
	if err := o.ensureTests(req, subdir, kind); err != nil {
		return false, err
	}
	if err := o.writeWorkflow(req, subdir, kind); err != nil {
		return false, err
	}
	o.initRepo(ctx, req, subdir, kind)
	o.makeVenv(ctx, req, subdir, kind)
	return true, nil
}

// materialize applies one render instruction under the kind subdirectory.
func (o *Orchestrator) materialize(req Request, subdir, kind string, inst templates.Instruction) error {
	dest := filepath.Join(subdir, inst.Path)

	if inst.Dir {
		if req.DryRun {
			o.emit(Event{Type: EventDryRunDir, Path: dest, Kind: kind})
			return nil
		}
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return o.abortWrite("create directory", dest, err)
		}
		o.emit(Event{Type: EventCreatedDir, Path: dest, Kind: kind})
		return nil
	}

	if req.DryRun {
		o.emit(Event{Type: EventDryRunFile, Path: dest, Kind: kind})
		return nil
	}
	if err := writeFile(dest, inst.Content); err != nil {
		return o.abortWrite("write file", dest, err)
	}
	o.emit(Event{Type: EventCreatedFile, Path: dest, Kind: kind})
	return nil
}

// writeLicense renders the LICENSE file when the requested identifier is a
// known one. Unknown identifiers still reach manifests through the
// context, but produce no file.
func (o *Orchestrator) writeLicense(req Request, subdir, kind string) error {
	if req.License == "" {
		return nil
	}
	lic, ok := templates.GetLicense(req.License)
	if !ok {
		return nil
	}

	dest := filepath.Join(subdir, "LICENSE")
	if req.DryRun {
		o.emit(Event{Type: EventDryRunFile, Path: dest, Kind: kind})
		return nil
	}

	text, err := lic.Render(strconv.Itoa(req.Year), req.Author)
	if err != nil {
		o.warn(kind, "license", err)
		return nil
	}
	if err := writeFile(dest, text); err != nil {
		return o.abortWrite("write license", dest, err)
	}
	o.emit(Event{Type: EventCreatedFile, Path: dest, Kind: kind})
	return nil
}

// ensureTests lays down a tests/ package marker unless the template
// already produced one. Creation is create-if-absent, so re-running over a
// template-provided tests directory changes nothing.
func (o *Orchestrator) ensureTests(req Request, subdir, kind string) error {
	if !req.WithTests {
		return nil
	}

	testsDir := filepath.Join(subdir, "tests")
	if req.DryRun {
		o.emit(Event{Type: EventDryRunDir, Path: testsDir, Kind: kind})
		return nil
	}
	if _, err := os.Stat(testsDir); err == nil {
		return nil
	}

	if err := os.MkdirAll(testsDir, 0o755); err != nil {
		return o.abortWrite("create tests directory", testsDir, err)
	}
	o.emit(Event{Type: EventCreatedDir, Path: testsDir, Kind: kind})

	marker := filepath.Join(testsDir, "__init__.py")
	if err := writeFile(marker, ""); err != nil {
		return o.abortWrite("write tests marker", marker, err)
	}
	o.emit(Event{Type: EventCreatedFile, Path: marker, Kind: kind})
	return nil
}

// writeWorkflow writes the generated CI pipeline for the kind.
func (o *Orchestrator) writeWorkflow(req Request, subdir, kind string) error {
	if !req.WithCI {
		return nil
	}

	dest := filepath.Join(subdir, workflow.Path)
	if req.DryRun {
		o.emit(Event{Type: EventDryRunFile, Path: dest, Kind: kind})
		return nil
	}
	if err := writeFile(dest, workflow.Generate(kind, req.PyMin)); err != nil {
		return o.abortWrite("write workflow", dest, err)
	}
	o.emit(Event{Type: EventCreatedFile, Path: dest, Kind: kind})
	return nil
}

// initRepo runs the repository initialization sequence for one kind
// subdirectory. Every command failure is a warning; the sequence always
// runs to its end.
func (o *Orchestrator) initRepo(ctx context.Context, req Request, subdir, kind string) {
	if !req.VCSRequested() {
		return
	}

	message := fmt.Sprintf("Initial commit (%s)", kind)
	gitDir := filepath.Join(subdir, ".git")

	if req.DryRun {
		detail := fmt.Sprintf("git init; git add .; git checkout -b %s; git commit -m %q",
			git.DefaultBranch, message)
		if req.PushRequested() {
			detail += fmt.Sprintf("; git remote add %s %s; git push -u %s %s",
				git.DefaultRemote, *req.Remote, git.DefaultRemote, git.DefaultBranch)
		}
		o.emit(Event{Type: EventDryRunDir, Path: gitDir, Kind: kind, Step: "git", Detail: detail})
		return
	}

	repo := git.New(o.runner, subdir)
	initErr := repo.Init(ctx)
	if initErr != nil {
		o.warn(kind, "git init", initErr)
	}
	if err := repo.AddAll(ctx); err != nil {
		o.warn(kind, "git add", err)
	}
	if err := repo.CheckoutBranch(ctx, git.DefaultBranch); err != nil {
		o.warn(kind, "git checkout", err)
	}
	if err := repo.Commit(ctx, message); err != nil {
		o.warn(kind, "git commit", err)
	}
	if initErr == nil {
		o.emit(Event{Type: EventCreatedDir, Path: gitDir, Kind: kind, Step: "git",
			Detail: "initialized repository on branch " + git.DefaultBranch})
	}

	if !req.PushRequested() {
		return
	}
	if err := repo.AddRemote(ctx, git.DefaultRemote, *req.Remote); err != nil {
		o.warn(kind, "git remote add", err)
	}
	if err := repo.Push(ctx, git.DefaultRemote, git.DefaultBranch); err != nil {
		o.warn(kind, "git push", err)
	}
}

// makeVenv builds the per-kind virtual environment.
func (o *Orchestrator) makeVenv(ctx context.Context, req Request, subdir, kind string) {
	if !req.WithVenv {
		return
	}

	dest := filepath.Join(subdir, venv.Dir)
	if req.DryRun {
		o.emit(Event{Type: EventDryRunDir, Path: dest, Kind: kind, Step: "venv",
			Detail: "python3 -m venv " + dest})
		return
	}
	if err := venv.Create(ctx, o.runner, subdir); err != nil {
		o.warn(kind, "venv", err)
		return
	}
	o.emit(Event{Type: EventCreatedDir, Path: dest, Kind: kind, Step: "venv"})
}

func (o *Orchestrator) abortWrite(step, path string, err error) error {
	o.emit(Event{Type: EventAborted, Path: path, Step: step, Detail: err.Error()})
	return oerrors.NewWriteError(fmt.Sprintf("failed to %s: %v", step, err), path, err)
}

func (o *Orchestrator) warn(kind, step string, err error) {
	o.emit(Event{Type: EventWarning, Kind: kind, Step: step, Detail: err.Error()})
}

func (o *Orchestrator) emit(e Event) {
	if o.sink != nil {
		o.sink.Emit(e)
	}
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
