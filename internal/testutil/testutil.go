// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyforge/cli/internal/exec"
)

// TempDir creates a temporary directory for tests and returns a cleanup function.
func TempDir(t *testing.T) (string, func()) {
	t.Helper()
	dir, err := os.MkdirTemp("", "pyforge-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	return dir, func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Logf("warning: failed to remove temp dir %s: %v", dir, err)
		}
	}
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// FakeCall records one command dispatched to a FakeRunner.
type FakeCall struct {
	Name string
	Args []string
	Dir  string
}

// Line renders the call as a single command line.
func (c FakeCall) Line() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// FakeRunner is a scripted exec.Runner. Results and spawn errors are keyed
// by the full command line; commands with no script succeed with empty
// output.
type FakeRunner struct {
	Results map[string]exec.Result
	Errs    map[string]error
	Calls   []FakeCall
}

// Run records the call and replies from the script.
func (f *FakeRunner) Run(_ context.Context, name string, args []string, opts exec.Options) (exec.Result, error) {
	call := FakeCall{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir}
	f.Calls = append(f.Calls, call)

	key := call.Line()
	if err, ok := f.Errs[key]; ok {
		return exec.Result{}, err
	}
	if res, ok := f.Results[key]; ok {
		return res, nil
	}
	return exec.Result{}, nil
}

// CommandLines returns every recorded call as a command line, in dispatch
// order.
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.Line()
	}
	return lines
}
