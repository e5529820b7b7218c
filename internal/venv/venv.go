// Package venv builds isolated Python environments for scaffolded projects.
package venv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/exec"
)

// Dir is the conventional environment subpath inside a project directory.
const Dir = ".venv"

// interpreters are tried in order until one spawns.
var interpreters = []string{"python3", "python"}

// Create builds a virtual environment at the conventional subpath of dir.
// An interpreter that cannot spawn falls through to the next candidate; an
// interpreter that runs and fails reports immediately.
func Create(ctx context.Context, runner exec.Runner, dir string) error {
	target := filepath.Join(dir, Dir)

	var lastErr error
	for _, python := range interpreters {
		res, err := runner.Run(ctx, python, []string{"-m", "venv", target}, exec.Options{Dir: dir})
		if err != nil {
			lastErr = oerrors.Wrap(oerrors.ErrExternalTool,
				fmt.Sprintf("%s -m venv: %v", python, err))
			continue
		}
		if res.ExitCode != 0 {
			return oerrors.Wrap(oerrors.ErrExternalTool,
				fmt.Sprintf("%s -m venv exited with %d: %s", python, res.ExitCode, firstOutput(res)))
		}
		return nil
	}
	return lastErr
}

func firstOutput(res exec.Result) string {
	if s := strings.TrimSpace(res.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(res.Stdout)
}
