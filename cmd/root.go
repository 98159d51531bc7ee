// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"reelfetch/internal/config"
	"reelfetch/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagAll    bool
	flagJSON   bool
	flagNoOpen bool
	flagEngine string
	flagBase   string
	flagSolver string
	flagLaunch string
	flagHeaded bool
	flagDebug  bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

// logger is built once the configuration is known.
var logger *log.Logger

var rootCmd = &cobra.Command{
	Use:   "reelfetch [title]",
	Short: "Find and resolve movie download links",
	Long: `reelfetch looks up a movie on the listing site, resolves the MegaUp and
UsersDrive links it finds to direct downloads, and opens the one you pick.

Run without a title for an interactive session.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              searchRun,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Print results as JSON instead of prompting")
	rootCmd.PersistentFlags().BoolVarP(&flagNoOpen, "no-open", "n", false, "Print the link without opening it")
	rootCmd.PersistentFlags().StringVarP(&flagEngine, "engine", "e", "", "Redirector engine: solver | browser")
	rootCmd.PersistentFlags().StringVar(&flagBase, "base", "", "Listing site base URL")
	rootCmd.PersistentFlags().StringVar(&flagSolver, "solver", "", "Anti-bot solver endpoint")
	rootCmd.PersistentFlags().StringVar(&flagLaunch, "launcher", "", "Link opener: auto | desktop | termux | none")
	rootCmd.PersistentFlags().BoolVar(&flagHeaded, "headed", false, "Show the browser window (browser engine)")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")
	rootCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "Resolve every link before choosing")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(setupCmd)
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
	if flagEngine != "" {
		cfg.Engine = flagEngine
	}
	if flagBase != "" {
		cfg.BaseURL = flagBase
	}
	if flagSolver != "" {
		cfg.SolverURL = flagSolver
	}
	if flagLaunch != "" {
		cfg.Launcher = flagLaunch
	}
	if flagNoOpen {
		cfg.Launcher = "none"
	}
	if flagHeaded {
		cfg.Headless = false
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger = logging.New(cfg.Debug)
	logger.Debug("configuration loaded", "base", cfg.BaseURL, "engine", cfg.Engine, "launcher", cfg.Launcher)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "reelfetch", Version)
	},
}
