package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ameen-roayan/stremio-cleanstream/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cleanstream",
	Short: "Skip resolution service for sensitive content",
	Long: `CleanStream - a skip resolution service for sensitive content

CleanStream stores community-contributed content flags for movies and
series, resolves them against per-viewer severity thresholds, and serves
the resulting skip intervals to media players.

Features:
  • Per-category severity thresholds (off, low, medium, high)
  • Skip interval merging across adjacent flagged segments
  • WebVTT skip tracks with pre-skip warnings
  • Movie Content Filter document import and export
  • Stremio addon endpoints for player integration`,
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

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Commands that run without config (version, convert, help) skip it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil {
		switch cmd.Name() {
		case "version", "convert", "help":
			return
		}
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
