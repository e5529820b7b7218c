package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/cmdutil"
	"github.com/pyforge/cli/internal/config"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a commented starter configuration file.

The file seeds defaults for new projects: author, license, minimum Python
version, and the always_venv/always_ci switches.

Examples:
  # Create ~/.pyforge/config.yaml
  pyforge config init

  # Overwrite an existing file
  pyforge config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite an existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	target, err := configTarget()
	if err != nil {
		return cmdutil.ExitWithCode(err)
	}

	if _, err := os.Stat(target); err == nil && !configInitForce {
		return cmdutil.ExitWithCode(oerrors.NewValidationError(
			"configuration file already exists", target, "",
			"Use --force to overwrite it.",
		))
	}

	// Config may carry personal details; keep it private to the user.
	if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return cmdutil.ExitWithCode(err)
	}
	if err := os.WriteFile(target, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return cmdutil.ExitWithCode(err)
	}

	output.Println(output.FormatCheckmark("wrote " + target))
	output.Println("")
	output.Println("Edit it, then check with: pyforge config vet")
	return nil
}

// configTarget picks the file config commands operate on: the --config
// flag, the PYFORGE_CONFIG variable, or the default location.
func configTarget() (string, error) {
	if configFlag != "" {
		return config.ExpandPath(configFlag)
	}
	return config.GetConfigFile()
}
