package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abap-tools/abaplens/internal/mcpserver"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for ABAP analysis",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered coding
assistants analyze ABAP snippets.

The MCP server:
- Provides the abap_analyze, abap_generate_template and abap_validate tools
- Communicates via stdio (standard MCP transport)

Example:
  abaplens mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fmt.Fprintf(os.Stderr, "ABAP Lens MCP Server\n\n")

	server := mcpserver.New(Version)
	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
