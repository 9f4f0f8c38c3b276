package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SataStrike/Highlighter/internal/config"
	"github.com/SataStrike/Highlighter/internal/infrastructure"
)

// NewRootCmd creates the root command for adops.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adops",
		Short: "Ad-operations reporting toolkit",
		Long: `adops reconciles supply-chain compliance reports against a canonical
ads.txt referential, highlights metric movements between reporting periods,
distributes error counts per website, and models revenue scenarios.

Configuration is read from an optional YAML file (see --config) with
ADOPS_* environment overrides.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to the YAML configuration file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewReconcileCmd())
	cmd.AddCommand(NewHighlightCmd())
	cmd.AddCommand(NewErrorDistCmd())
	cmd.AddCommand(NewRevenueCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and initializes the process logger for a
// subcommand run.
func setup(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}
	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}
