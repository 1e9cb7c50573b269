package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abap-tools/abaplens/internal/rpc"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the line-delimited JSON-RPC server on stdio",
	Long: `Start the JSON-RPC 2.0 server: one request per stdin line, one response
per stdout line. Diagnostics go to stderr and are not part of the protocol.

Supported methods: analyze, detect-patterns, generate-template, validate,
extract-schema. The loop exits 0 when stdin is exhausted; a failed request
never stops the loop.

Example:
  echo '{"method":"analyze","params":{"code":"SELECT * FROM vbak."},"id":1}' | abaplens serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	server := rpc.NewServer(os.Stdin, os.Stdout)

	// Startup banner on stderr only; stdout carries protocol lines.
	sessionID := uuid.NewString()
	fmt.Fprintf(os.Stderr, "ABAP Lens JSON-RPC server\n")
	fmt.Fprintf(os.Stderr, "Session: %s\n", sessionID)
	fmt.Fprintf(os.Stderr, "Methods: %s\n\n", strings.Join(server.Methods(), ", "))

	if err := server.Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
