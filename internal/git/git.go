// Package git drives the version-control binary inside freshly scaffolded
// directories. Every operation runs with the repository directory as its
// working directory. Failures come back as errors for the caller to report;
// nothing in this package aborts a run.
package git

import (
	"context"
	"fmt"
	"strings"

	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/exec"
)

// DefaultBranch is the primary branch created for new repositories.
const DefaultBranch = "main"

// DefaultRemote is the remote name used when attaching a URL.
const DefaultRemote = "origin"

// Repo operates on one repository directory through a command runner.
type Repo struct {
	runner exec.Runner
	dir    string
}

// New returns a Repo rooted at dir.
func New(runner exec.Runner, dir string) *Repo {
	return &Repo{runner: runner, dir: dir}
}

// Dir returns the repository directory.
func (r *Repo) Dir() string {
	return r.dir
}

// Init creates an empty repository.
func (r *Repo) Init(ctx context.Context) error {
	return r.git(ctx, "init")
}

// AddAll stages everything under the repository root.
func (r *Repo) AddAll(ctx context.Context) error {
	return r.git(ctx, "add", ".")
}

// CheckoutBranch creates and switches to a branch.
func (r *Repo) CheckoutBranch(ctx context.Context, name string) error {
	return r.git(ctx, "checkout", "-b", name)
}

// Commit records the staged tree.
func (r *Repo) Commit(ctx context.Context, message string) error {
	return r.git(ctx, "commit", "-m", message)
}

// AddRemote attaches a named remote URL.
func (r *Repo) AddRemote(ctx context.Context, name, url string) error {
	return r.git(ctx, "remote", "add", name, url)
}

// Push publishes a branch to a remote and sets it as upstream. Pushing a
// fresh commit commonly fails without credentials, so callers treat the
// returned error as a warning.
func (r *Repo) Push(ctx context.Context, remote, branch string) error {
	return r.git(ctx, "push", "-u", remote, branch)
}

func (r *Repo) git(ctx context.Context, args ...string) error {
	res, err := r.runner.Run(ctx, "git", args, exec.Options{Dir: r.dir})
	if err != nil {
		return oerrors.Wrap(oerrors.ErrExternalTool,
			fmt.Sprintf("git %s: %v", strings.Join(args, " "), err))
	}
	if res.ExitCode != 0 {
		return oerrors.Wrap(oerrors.ErrExternalTool,
			fmt.Sprintf("git %s exited with %d: %s", strings.Join(args, " "), res.ExitCode, firstOutput(res)))
	}
	return nil
}

func firstOutput(res exec.Result) string {
	if s := strings.TrimSpace(res.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(res.Stdout)
}
