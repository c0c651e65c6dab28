// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"nonton/internal/config"
	"nonton/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagBase    string
	flagPort    int
	flagBrowser string
	flagNoOpen  bool
	flagJSON    bool
	flagDebug   bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

// logger is built once the configuration is known.
var logger = log.Default()

var rootCmd = &cobra.Command{
	Use:   "nonton [query]",
	Short: "Search anime and watch episodes in the browser",
	Long: `Nonton searches the Animasu catalog, lets you pick an anime and an episode,
and plays it through a small local relay opened in your browser.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              searchRun,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBase, "base", "b", "", "Catalog host (default: v5.animasu.cc)")
	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "P", 0, "Relay port (default: 3000)")
	rootCmd.PersistentFlags().StringVar(&flagBrowser, "browser", "", "Open the relay with this application instead of the default browser")
	rootCmd.PersistentFlags().BoolVar(&flagNoOpen, "no-open", false, "Print the relay URL instead of opening it")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagBase != "" {
		cfg.Base = flagBase
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagBrowser != "" {
		cfg.Browser = flagBrowser
	}
	if flagNoOpen {
		cfg.OpenBrowser = false
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger = logging.New(os.Stderr, cfg.Debug)
	logger.Debug("config loaded", "path", config.ConfigPath(), "base", cfg.Base, "port", cfg.Port)

	return nil
}
