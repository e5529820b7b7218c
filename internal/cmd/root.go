// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pyforge/cli/internal/config"
	"github.com/pyforge/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Configuration loaded during PersistentPreRunE. Never nil after that;
	// a missing config file yields the zero Config.
	loadedConfig *config.Config
)

// NewRootCmd creates the root command for the pyforge CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pyforge",
		Short:         "Python project scaffolding CLI",
		Long:          `pyforge scaffolds Python projects from built-in templates: package layout, license, tests, CI workflow, git repository and virtual environment in one command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: PYFORGE_CONFIG, default: ~/.pyforge/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// A broken config file should not block commands that never read
		// it; resolution falls back to env vars and defaults.
		output.Warn("ignoring unreadable config file", "error", err)
		cfg = &config.Config{}
	}
	loadedConfig = cfg

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"author", cfg.Author,
			"license", cfg.License,
			"python", cfg.Python,
		)
	}

	return nil
}

// GetConfig returns the configuration loaded at startup.
func GetConfig() *config.Config {
	if loadedConfig == nil {
		return &config.Config{}
	}
	return loadedConfig
}

// IsVerbose reports whether --verbose was given.
func IsVerbose() bool {
	return verboseFlag
}
