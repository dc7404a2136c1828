package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	segmentssvc "github.com/ameen-roayan/stremio-cleanstream/internal/services/segments"
	skipssvc "github.com/ameen-roayan/stremio-cleanstream/internal/services/skips"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

var (
	convertFormat    string
	convertOutput    string
	convertPrefs     string
	convertThreshold string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a filter document to a skip track",
	Long: `Parse a Movie Content Filter document and render it as a skip track
without touching the database.

Per-category thresholds can be given with --prefs; categories not named
there fall back to --threshold. Use --threshold off with no --prefs to
echo the document back through the parser.

Example:
  cleanstream convert matrix.mcf --format vtt
  cleanstream convert matrix.mcf --format json --prefs violence=medium,language=low
  cleanstream convert matrix.mcf --format mcf -o cleaned.mcf`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFormat, "format", "vtt", "output format (vtt, json, mcf)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (defaults to stdout)")
	convertCmd.Flags().StringVar(&convertPrefs, "prefs", "", "per-category thresholds, e.g. violence=medium,language=low")
	convertCmd.Flags().StringVar(&convertThreshold, "threshold", "high", "threshold for categories not named in --prefs")
}

func runConvert(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	doc, err := mcf.Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	titleID := doc.Meta.IMDB
	if titleID == "" {
		titleID = strings.TrimSuffix(args[0], ".mcf")
	}

	prefs, err := parsePrefs(convertPrefs, convertThreshold)
	if err != nil {
		return err
	}

	segments := segmentssvc.DocumentToSegments(titleID, doc)
	intervals := skipssvc.Resolve(segments, prefs)

	var payload string
	switch convertFormat {
	case "vtt":
		payload = skipssvc.RenderWebVTT(intervals)
	case "json":
		encoded, err := json.MarshalIndent(skipssvc.NewEnvelope(titleID, nil, intervals), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode envelope: %w", err)
		}
		payload = string(encoded) + "\n"
	case "mcf":
		payload = mcf.Generate(skipssvc.ToDocument(titleID, intervals))
	default:
		return fmt.Errorf("unsupported format: %s", convertFormat)
	}

	if convertOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), payload)
		return nil
	}
	if err := os.WriteFile(convertOutput, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", convertOutput, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", convertOutput)
	return nil
}

// parsePrefs builds a preference map from the --prefs string, filling the
// remaining categories from the fallback threshold.
func parsePrefs(spec, fallback string) (skipssvc.Preferences, error) {
	prefs := skipssvc.AllCategories(fallback)

	if spec == "" {
		return prefs, nil
	}

	for _, pair := range strings.Split(spec, ",") {
		category, threshold, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || category == "" {
			return nil, fmt.Errorf("invalid preference %q, want category=threshold", pair)
		}
		switch threshold {
		case "off", "low", "medium", "high":
		default:
			return nil, fmt.Errorf("invalid threshold %q for %s", threshold, category)
		}
		prefs[category] = threshold
	}

	return prefs, nil
}
