package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/recipe-search/internal/database"
	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for Recipe Search.

The schema is derived from the application models. The serve command applies
it on start; these subcommands manage it by hand.

Available subcommands:
  up      - Create or update all application tables
  down    - Drop all application tables
  status  - Show which application tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema",
	Long: `Apply all pending database migrations.

Creates missing tables, columns and indexes for every application model.
Existing data is kept.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the schema
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the schema",
	Long: `Rollback the last applied migration by dropping every application table.

All stored visitor preferences are deleted.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of database migrations.

Lists every application table and whether it exists.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
	migrateCmd.PersistentFlags().String("database", "", "SQLite database path (overrides config)")
	migrateDownCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

func openMigrationDB(cmd *cobra.Command) (*database.DB, error) {
	path, _ := cmd.Flags().GetString("database")
	verbose := false

	if path == "" {
		cfg, err := config.GetConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		path, verbose = cfg.Database.Path, cfg.Database.Verbose
	}

	db, err := database.Initialize(path, verbose, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		return printStatus(cmd, db)
	}

	if err := db.Migrate(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Applied schema for %d model(s)\n", len(models.AllModels()))
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	out := cmd.OutOrStdout()

	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		return printStatus(cmd, db)
	}

	if !yes {
		fmt.Fprint(out, "WARNING: This will drop all application tables. Continue? (y/N): ")
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Migration rollback cancelled")
			return nil
		}
	}

	if err := db.Migrator().DropTable(models.AllModels()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	fmt.Fprintln(out, "Dropped all application tables")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	return printStatus(cmd, db)
}

func printStatus(cmd *cobra.Command, db *database.DB) error {
	status, err := db.Status()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, s := range status {
		state := "pending"
		if s.Present {
			state = "applied"
		}
		fmt.Fprintf(out, "  %-30s %s\n", s.Table, state)
	}
	return nil
}
