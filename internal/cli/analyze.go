package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/abap-tools/abaplens/internal/analyzer"
	"github.com/abap-tools/abaplens/internal/config"
	"github.com/abap-tools/abaplens/internal/report"
	"github.com/abap-tools/abaplens/internal/scan"
)

var analyzeQuiet bool

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path...]",
	Short: "Analyze ABAP source files and print a report per file",
	Long: `Analyze reads ABAP source files, extracts lexical patterns and prints a
formatted report per file: module classification, complexity score,
business logic tags, tables, dependencies, SAP patterns, database
operations, variables and business rules.

Arguments can be files or directories. Directories are walked and filtered
by the include/ignore glob patterns from the configuration. With no
arguments, the current directory is scanned.

Examples:
  # Analyze a single report
  abaplens analyze z_pricing_logic.abap

  # Analyze every ABAP file under a directory
  abaplens analyze ./src`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false, "Disable the progress bar")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	files, err := resolveInputs(args, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No ABAP files found")
		return nil
	}

	reports := make([]string, 0, len(files))
	bar := newAnalyzeBar(len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		text := string(data)
		features := analyzer.Extract(text)
		classification := analyzer.Classify(features, text)
		reports = append(reports, fmt.Sprintf("=== %s ===\n%s", path, report.Render(features, classification)))

		if bar != nil {
			bar.Add(1)
		}
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(r)
	}
	return nil
}

// newAnalyzeBar returns a progress bar, or nil when a bar would just be
// noise (quiet mode or a single file).
func newAnalyzeBar(total int) *progressbar.ProgressBar {
	if analyzeQuiet || total < 2 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Analyzing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

// resolveInputs expands the argument list into a flat file list. Plain
// files are taken as-is; directories are walked with the configured
// include/ignore globs.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	files := []string{}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		discovery, err := scan.NewFileDiscovery(arg, cfg.Analyze.Include, cfg.Analyze.Ignore)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern: %w", err)
		}
		found, err := discovery.DiscoverFiles()
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", arg, err)
		}
		files = append(files, found...)
	}
	return files, nil
}
