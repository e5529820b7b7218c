// Package exec provides a stub-friendly gateway for running external commands.
//
// Scaffolding shells out to version control and environment tooling without
// interpreting their output. The Runner interface keeps those invocations
// opaque and lets tests substitute a fake without spawning processes.
package exec

import (
	"bytes"
	"context"
	"os/exec"
)

// Result holds the outcome of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Options holds optional parameters for command execution.
type Options struct {
	Dir string            // working directory (optional)
	Env map[string]string // extra environment variables (overlay)
}

// Runner is the interface for running external commands.
// Implementations must be safe for stubbing in tests.
type Runner interface {
	// Run executes a command and returns the result.
	// Returns Result with ExitCode set if the process exits (even non-zero).
	// Returns error only for execution failures (binary not found, ctx
	// canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)
}

// System is the production implementation of Runner using os/exec.
type System struct{}

// NewSystem creates a new System runner.
func NewSystem() *System {
	return &System{}
}

// Run executes the command and captures stdout/stderr.
func (s *System) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		// Exit errors mean the process ran to completion with a non-zero
		// status; that is a Result, not a Go error.
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	result.ExitCode = 0
	return result, nil
}
