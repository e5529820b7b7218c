// Package cmdutil provides shared command utilities for pyforge subcommands.
// It centralizes flag group management and error presentation helpers.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/output"
)

// CreateFlags holds the flags of the create command.
type CreateFlags struct {
	Kinds       []string
	Dir         string
	License     string
	Author      string
	Python      string
	Git         bool
	Remote      string
	Venv        bool
	NoTests     bool
	CI          bool
	DryRun      bool
	Interactive bool
}

// AddTo registers the create flags on the given cobra command.
func (f *CreateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.Kinds, "kinds", "k", []string{"library"},
		"Template kinds to scaffold (can be repeated or comma-separated)")
	cmd.Flags().StringVarP(&f.Dir, "dir", "d", ".",
		"Parent directory for the new project")
	cmd.Flags().StringVar(&f.License, "license", "",
		"License identifier written to manifests and LICENSE (e.g. MIT)")
	cmd.Flags().StringVar(&f.Author, "author", "",
		"Author name for manifests and license texts")
	cmd.Flags().StringVar(&f.Python, "python", "",
		"Minimum Python version for requires-python and the CI matrix")
	cmd.Flags().BoolVar(&f.Git, "git", false,
		"Initialize a git repository per kind")
	cmd.Flags().StringVar(&f.Remote, "remote", "",
		"Git remote URL to add and push to (implies --git)")
	cmd.Flags().BoolVar(&f.Venv, "venv", false,
		"Create a .venv virtual environment per kind")
	cmd.Flags().BoolVar(&f.NoTests, "no-tests", false,
		"Skip the tests/ directory marker")
	cmd.Flags().BoolVar(&f.CI, "ci", false,
		"Write a GitHub Actions workflow per kind")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Print planned paths and commands without writing anything")
	cmd.Flags().BoolVarP(&f.Interactive, "interactive", "i", false,
		"Prompt for any values not supplied by flags")
}

// RemoteValue returns the tri-state remote: nil when the flag was not used,
// a pointer to "" for an explicitly cleared remote (--remote=), and a
// pointer to the URL otherwise.
func (f *CreateFlags) RemoteValue(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("remote") {
		return nil
	}
	return &f.Remote
}

// OutputFlags holds the output format flag shared by listing commands.
type OutputFlags struct {
	Output string
}

// AddTo registers the output flags on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", "table",
		"Output format: table, yaml or json")
}

// Format validates and returns the selected output format.
func (f *OutputFlags) Format() (output.OutputFormat, error) {
	format := output.OutputFormat(f.Output)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format %q (valid: table, yaml, json)", f.Output)
	}
	return format, nil
}

// ResolveProjectName returns the project name from command args, or "" when
// none was given (interactive mode prompts for it).
func ResolveProjectName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
