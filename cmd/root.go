package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/pkg/config"
	"github.com/killallgit/recipe-search/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recipe-search",
	Short: "Recipe Search server",
	Long: `Recipe Search - browse recipes from the Spoonacular API

Serves a server-rendered search page and a small JSON API on top of the
Spoonacular recipe search and recipe information endpoints.

Features:
  • Keyword search with cuisine, diet, intolerance and meal type filters
  • Recipe detail pages
  • Result grids that can hide recipes without a usable image
  • Per-visitor preferences stored in SQLite
  • Upstream response caching in memory or Redis`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && cmd.Name() == "version" {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. Flags given on the command line win
// over the logging section of the config.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	lc := logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Environment == "development",
	}

	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		lc.Level = f.Value.String()
	}
	if f := cmd.Flag("json-logs"); f != nil && f.Changed {
		lc.Format = "console"
		if f.Value.String() == "true" {
			lc.Format = "json"
		}
	}

	return logger.New(lc)
}
