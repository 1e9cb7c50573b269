// Package mcpserver exposes the analyzer as a Model Context Protocol server
// on stdio, so LLM-powered assistants can analyze ABAP snippets directly.
package mcpserver

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
)

// Server manages the MCP server lifecycle.
type Server struct {
	mcp *server.MCPServer
}

// New creates an MCP server with all analyzer tools registered.
func New(version string) *Server {
	mcpServer := server.NewMCPServer(
		"abaplens",
		version,
		server.WithToolCapabilities(true),
	)

	AddAnalyzeTool(mcpServer)
	AddGenerateTemplateTool(mcpServer)
	AddValidateTool(mcpServer)

	return &Server{mcp: mcpServer}
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
