package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ameen-roayan/stremio-cleanstream/internal/database"
	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	segmentssvc "github.com/ameen-roayan/stremio-cleanstream/internal/services/segments"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/config"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

var importTitleID string

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import filter documents into the database",
	Long: `Parse one or more Movie Content Filter documents and store their cues
as segments.

The title is taken from each document's IMDB metadata line; --title
overrides it for all files. A file that fails to parse is reported and
skipped, the rest are still imported.

Example:
  cleanstream import matrix.mcf
  cleanstream import --title tt0133093 matrix-v2.mcf
  cleanstream import filters/*.mcf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importTitleID, "title", "", "title ID to import under (overrides document metadata)")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Segment{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	service := segmentssvc.NewService(segmentssvc.NewRepository(db.DB))
	ctx := context.Background()

	imported := 0
	failed := 0
	for _, path := range args {
		count, err := importFile(ctx, service, path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: imported %d segments\n", path, count)
		imported += count
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Done: %d segments from %d files (%d failed)\n",
		imported, len(args)-failed, failed)

	if failed == len(args) {
		return fmt.Errorf("no files imported")
	}
	return nil
}

func importFile(ctx context.Context, service segmentssvc.Service, path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	doc, err := mcf.Parse(string(content))
	if err != nil {
		return 0, err
	}

	titleID := importTitleID
	if titleID == "" {
		titleID = doc.Meta.IMDB
	}
	if titleID == "" {
		return 0, fmt.Errorf("no IMDB metadata in document; use --title")
	}

	return service.ImportDocument(ctx, titleID, doc)
}
