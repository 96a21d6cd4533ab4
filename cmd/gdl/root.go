package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gsingh93/gdl-parser/pkg/cli"
	"github.com/gsingh93/gdl-parser/pkg/config"
	"github.com/gsingh93/gdl-parser/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gdl",
	Short: "Toolkit for Game Description Language files",
	Long: `Gdl parses, formats, and catalogs Game Description Language files.

Game descriptions are logic programs over s-expressions: facts, relations,
and rules with negation, disjunction, and distinctness constraints. The
toolkit provides:
  - Parsing with precise, source-located error messages
  - Canonical formatting of description files
  - Structural linting and statistics
  - A persistent catalog of parsed games
  - A file watcher that keeps the catalog in sync with sources`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "gdl.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig loads the configuration for a command. A missing config file is
// only an error when --config was given explicitly; otherwise defaults apply.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if cmd.Flags().Changed("config") {
			return nil, cli.NewConfigError("", fmt.Sprintf("config file %q not found", cfgFile))
		}
		cfg := config.DefaultConfig()
		applyVerbose(cfg)
		return cfg, nil
	}

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}
	applyVerbose(cfg)
	return cfg, nil
}

func applyVerbose(cfg *config.Config) {
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
}

// setupLogging configures the process-wide logger from config.
func setupLogging(cfg *config.Config) (*logging.Logger, error) {
	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging))
	if err != nil {
		return nil, err
	}
	logger.SetDefault()
	return logger, nil
}
