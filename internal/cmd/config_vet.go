package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/cmdutil"
	"github.com/pyforge/cli/internal/config"
	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/output"
	"github.com/pyforge/cli/internal/templates"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the pyforge configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. File parses as YAML with known keys
  3. license is a known identifier (warning otherwise)
  4. python parses as a version (warning otherwise)

The config path is resolved using precedence:
  --config flag > PYFORGE_CONFIG env > ~/.pyforge/config.yaml

Examples:
  # Validate the default configuration
  pyforge config vet

  # Validate a custom path
  pyforge config vet --config ./team-config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	target, err := configTarget()
	if err != nil {
		return cmdutil.ExitWithCode(err)
	}

	output.Debug("validating config", "path", target)

	if _, err := os.Stat(target); os.IsNotExist(err) {
		return cmdutil.ExitWithCode(oerrors.NewValidationError(
			"configuration file not found", target, "",
			"Run 'pyforge config init' to create one.",
		))
	}

	cfg, err := config.NewLoader().Load(target)
	if err != nil {
		return cmdutil.ExitWithCode(err)
	}

	if cfg.License != "" {
		if _, ok := templates.GetLicense(cfg.License); !ok {
			output.Warn("unknown license identifier; projects will carry it verbatim without a LICENSE file",
				"license", cfg.License,
				"known", strings.Join(templates.LicenseIDs(), ", "),
			)
		}
	}
	if cfg.Python != "" {
		if _, err := semver.NewVersion(cfg.Python); err != nil {
			output.Warn("python does not parse as a version; CI matrices will keep it unsorted",
				"python", cfg.Python,
			)
		}
	}

	effective := cfg.WithDefaults()
	output.Println("Configuration is valid: " + target)
	output.Println("")
	output.Println("Effective values:")
	output.Println(fmt.Sprintf("  author:      %s", effective.Author))
	output.Println(fmt.Sprintf("  license:     %s", orNone(effective.License)))
	output.Println(fmt.Sprintf("  python:      %s", effective.Python))
	output.Println(fmt.Sprintf("  always_venv: %t", effective.AlwaysVenv))
	output.Println(fmt.Sprintf("  always_ci:   %t", effective.AlwaysCI))

	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
