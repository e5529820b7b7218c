package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/cmdutil"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	flags := &cmdutil.OutputFlags{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in template kinds",
		Long: `List the built-in template kinds with their descriptions.

Examples:
  # Show the kinds as a table
  pyforge templates

  # Machine-readable listing
  pyforge templates -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(flags)
		},
	}

	flags.AddTo(cmd)
	return cmd
}

func runTemplates(flags *cmdutil.OutputFlags) error {
	format, err := flags.Format()
	if err != nil {
		return cmdutil.ExitWithCode(oerrors.NewValidationError(
			err.Error(), "", "output", "Valid formats: table, yaml, json.",
		))
	}

	list := templates.List()
	entries := make([]output.KindEntry, 0, len(list))
	for _, tpl := range list {
		files := make([]string, 0, len(tpl.Files))
		for _, f := range tpl.Files {
			files = append(files, f.Path)
		}
		entries = append(entries, output.KindEntry{
			Kind:        tpl.Kind,
			Description: tpl.Description,
			Files:       files,
		})
	}

	listing := output.KindListing{
		Kinds:    entries,
		Licenses: templates.LicenseIDs(),
	}
	return output.WriteKindListing(listing, output.ListingOptions{
		Format: format,
		Writer: os.Stdout,
	})
}
