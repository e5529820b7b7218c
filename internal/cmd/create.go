package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/cmdutil"
	"github.com/pyforge/cli/internal/config"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/exec"
	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/scaffold"
)

// createValues holds the per-setting resolution results for one run.
type createValues struct {
	License config.ResolvedValue
	Author  config.ResolvedValue
	Python  config.ResolvedValue
}

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	flags := &cmdutil.CreateFlags{}

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Scaffold a new Python project",
		Long: `Scaffold a new Python project from one or more built-in template kinds.

Each kind lays out its files under the project root; with several kinds the
root becomes a small monorepo with one subdirectory per kind. Optional steps
add a LICENSE file, a tests/ marker, a GitHub Actions workflow, a git
repository, and a .venv virtual environment.

Examples:
  # Create a library project in the current directory
  pyforge create my-project

  # Create a FastAPI service with git, CI and a virtual environment
  pyforge create my-service -k fastapi --git --ci --venv

  # Create a monorepo with a library and a CLI, pushed to a remote
  pyforge create my-tools -k library -k cli --remote git@github.com:acme/my-tools.git

  # See what would be created without writing anything
  pyforge create my-project --dry-run

  # Answer prompts for anything not given as a flag
  pyforge create -i`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, flags, args)
		},
	}

	flags.AddTo(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, flags *cmdutil.CreateFlags, args []string) error {
	cfg := GetConfig()
	values := resolveCreateValues(cmd, flags, cfg)
	config.LogResolvedValues([]config.ResolvedValue{values.License, values.Author, values.Python})

	// Fold always_venv/always_ci in before prompting so the confirms
	// default to the configured behavior.
	flags.Venv = boolSetting(cmd, "venv", flags.Venv, cfg.AlwaysVenv)
	flags.CI = boolSetting(cmd, "ci", flags.CI, cfg.AlwaysCI)

	name := cmdutil.ResolveProjectName(args)

	if flags.Interactive {
		if err := promptMissing(cmd, flags, &name, &values); err != nil {
			return cmdutil.ExitWithCode(err)
		}
	}
	if name == "" {
		return cmdutil.ExitWithCode(oerrors.NewValidationError(
			"project name required", "", "name",
			"Pass a name (pyforge create my-project) or use --interactive.",
		))
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return cmdutil.ExitWithCode(oerrors.NewValidationError(
			fmt.Sprintf("invalid project name %q", name), "", "name",
			"The name becomes a single directory; use --dir to pick where it goes.",
		))
	}
	if _, err := semver.NewVersion(values.Python.Value); err != nil {
		return cmdutil.ExitWithCode(oerrors.NewValidationError(
			fmt.Sprintf("invalid python version %q", values.Python.Value), "", "python",
			"Pass a version like 3.8 or 3.11.2.",
		))
	}

	req := scaffold.Request{
		Name:      name,
		Kinds:     flags.Kinds,
		Dir:       flags.Dir,
		License:   values.License.Value,
		Author:    values.Author.Value,
		PyMin:     values.Python.Value,
		Year:      time.Now().Year(),
		InitRepo:  flags.Git,
		WithTests: !flags.NoTests,
		WithCI:    flags.CI,
		WithVenv:  flags.Venv,
		DryRun:    flags.DryRun,
		Remote:    flags.RemoteValue(cmd),
	}

	root := filepath.Join(req.Dir, req.Name)
	reporter := output.NewSink(root, IsVerbose())
	orch := scaffold.New(exec.NewSystem(), reporter)

	ctx := cmd.Context()
	var result scaffold.Result
	run := func() error {
		var runErr error
		result, runErr = orch.Run(ctx, req)
		return runErr
	}

	// The spinner and live progress lines would fight over the terminal,
	// so spinner runs buffer the report and flush it afterwards.
	var err error
	if output.IsTTY() && !IsVerbose() && !req.DryRun {
		var buf bytes.Buffer
		reporter.Writer = &buf
		err = output.RunWithSpinner(ctx, run,
			output.WithTitle(fmt.Sprintf("Scaffolding %s...", name)))
		output.Print(buf.String())
	} else {
		err = run()
	}
	if err != nil {
		return cmdutil.ExitWithCode(err)
	}

	output.Debug("scaffolding complete",
		"root", result.Root,
		"kinds", strings.Join(result.Kinds, ", "),
	)

	if tree := reporter.Tree(); tree != "" {
		output.Println("")
		output.Print(tree)
	}

	return nil
}

// resolveCreateValues resolves license, author and python across flag, env,
// config file and default.
func resolveCreateValues(cmd *cobra.Command, flags *cmdutil.CreateFlags, cfg *config.Config) createValues {
	return createValues{
		License: config.Resolve(config.ResolveOptions{
			Key:         "license",
			FlagValue:   flags.License,
			FlagChanged: cmd.Flags().Changed("license"),
			EnvVar:      "PYFORGE_LICENSE",
			ConfigValue: cfg.License,
			Default:     "",
		}),
		Author: config.Resolve(config.ResolveOptions{
			Key:         "author",
			FlagValue:   flags.Author,
			FlagChanged: cmd.Flags().Changed("author"),
			EnvVar:      "PYFORGE_AUTHOR",
			ConfigValue: cfg.Author,
			Default:     config.DefaultAuthor,
		}),
		Python: config.Resolve(config.ResolveOptions{
			Key:         "python",
			FlagValue:   flags.Python,
			FlagChanged: cmd.Flags().Changed("python"),
			EnvVar:      "PYFORGE_PYTHON",
			ConfigValue: cfg.Python,
			Default:     config.DefaultPython,
		}),
	}
}

// boolSetting applies an always-on config key under an unchanged flag.
func boolSetting(cmd *cobra.Command, flag string, flagValue, configValue bool) bool {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	return flagValue || configValue
}
