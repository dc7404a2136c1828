package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ameen-roayan/stremio-cleanstream/internal/database"
	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	Long: `Bring the CleanStream database schema up to date.

The schema is managed through GORM auto-migration: new columns and
indexes are added as the models evolve. Existing data is preserved.

Example:
  cleanstream migrate
  cleanstream migrate --dry-run`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("dry-run", false, "show what would be done without making changes")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		fmt.Printf("Would migrate %s with models: segments\n", cfg.Database.Path)
		return nil
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Segment{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Printf("Database %s migrated\n", cfg.Database.Path)
	return nil
}
