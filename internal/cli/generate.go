package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abap-tools/abaplens/internal/analyzer"
	"github.com/abap-tools/abaplens/internal/codegen"
	"github.com/abap-tools/abaplens/internal/config"
)

var (
	generateTarget   string
	generateNoBanner bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a skeleton template from an ABAP file",
	Long: `Generate renders a non-executable skeleton template (variable declarations
and data-access placeholders) from an ABAP source file. Reads stdin when
the file argument is "-" or omitted.

The output is a documentation aid, not a translation: placeholder calls
must be replaced by hand.

Examples:
  abaplens generate z_pricing_logic.abap
  abaplens generate --target python z_pricing_logic.abap
  cat z_pricing_logic.abap | abaplens generate -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateTarget, "target", "t", "", "template target: typescript, javascript, python (default from config)")
	generateCmd.Flags().BoolVar(&generateNoBanner, "no-banner", false, "omit the comment banner")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var data []byte
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
	}

	opts := codegen.Options{
		Target: codegen.Target(cfg.Generator.Target),
		Banner: cfg.Generator.Banner && !generateNoBanner,
	}
	if generateTarget != "" {
		opts.Target = codegen.Target(generateTarget)
	}

	fmt.Print(codegen.Generate(analyzer.Extract(string(data)), opts))
	return nil
}
