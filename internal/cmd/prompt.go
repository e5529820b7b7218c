package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/cmdutil"
	"github.com/pyforge/cli/internal/config"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/templates"
)

// promptMissing asks for any create settings not supplied by flags. Values
// resolved from env or config appear as prompt defaults; flag-supplied
// settings are not asked again.
func promptMissing(cmd *cobra.Command, flags *cmdutil.CreateFlags, name *string, values *createValues) error {
	if !output.IsInputTTY() {
		return oerrors.NewValidationError(
			"interactive mode requires a terminal", "", "interactive",
			"Run without --interactive and pass the values as flags.",
		)
	}

	license := values.License.Value
	if license == "" && values.License.Source == config.SourceDefault {
		// Suggested starting point; "none" stays selectable.
		license = "MIT"
	}
	author := values.Author.Value
	python := values.Python.Value

	var fields []huh.Field

	if *name == "" {
		fields = append(fields, huh.NewInput().
			Title("Project name").
			Placeholder("my-project").
			Value(name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name must not be empty")
				}
				return nil
			}))
	}

	if !cmd.Flags().Changed("kinds") {
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Template kinds").
			Description("Each kind becomes one project layout; several make a monorepo.").
			Options(huh.NewOptions(templates.Names()...)...).
			Value(&flags.Kinds).
			Validate(func(kinds []string) error {
				if len(kinds) == 0 {
					return fmt.Errorf("select at least one kind")
				}
				return nil
			}))
	}

	if !cmd.Flags().Changed("license") {
		options := []huh.Option[string]{huh.NewOption("none (proprietary)", "")}
		for _, id := range templates.LicenseIDs() {
			options = append(options, huh.NewOption(id, id))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("License").
			Options(options...).
			Value(&license))
	}

	if !cmd.Flags().Changed("author") {
		fields = append(fields, huh.NewInput().
			Title("Author").
			Value(&author))
	}

	if !cmd.Flags().Changed("python") {
		fields = append(fields, huh.NewInput().
			Title("Minimum Python version").
			Value(&python))
	}

	if !cmd.Flags().Changed("git") && !cmd.Flags().Changed("remote") {
		fields = append(fields, huh.NewConfirm().
			Title("Initialize a git repository?").
			Value(&flags.Git))
	}

	if !cmd.Flags().Changed("venv") {
		fields = append(fields, huh.NewConfirm().
			Title("Create a .venv virtual environment?").
			Value(&flags.Venv))
	}

	if !cmd.Flags().Changed("ci") {
		fields = append(fields, huh.NewConfirm().
			Title("Add a GitHub Actions workflow?").
			Value(&flags.CI))
	}

	if len(fields) == 0 {
		return nil
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return fmt.Errorf("interactive prompt: %w", err)
	}

	values.License.Value = license
	values.Author.Value = author
	values.Python.Value = python

	return nil
}
