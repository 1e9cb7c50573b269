package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abap-tools/abaplens/internal/analyzer"
	"github.com/abap-tools/abaplens/internal/codegen"
	"github.com/abap-tools/abaplens/internal/report"
)

// AddAnalyzeTool registers the abap_analyze tool with an MCP server.
// This function is composable - it can be combined with other tool registrations.
func AddAnalyzeTool(s *server.MCPServer) {
	tool := mcp.NewTool(
		"abap_analyze",
		mcp.WithDescription("Analyze an ABAP code snippet: extract business logic tags, tables, dependencies, SAP patterns, database operations, variables and business rules, plus a module classification and complexity score."),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("ABAP source text to analyze")),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	s.AddTool(tool, analyzeHandler)
}

func analyzeHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.GetRawArguments().(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	code, ok := args["code"].(string)
	if !ok {
		return mcp.NewToolResultError("code parameter is required"), nil
	}

	features := analyzer.Extract(code)
	classification := analyzer.Classify(features, code)

	response := map[string]any{
		"metadata": map[string]any{
			"module":      classification.Module,
			"complexity":  classification.Complexity,
			"linesOfCode": classification.LinesOfCode,
		},
		"features":      features,
		"documentation": report.Render(features, classification),
	}
	return toolResultJSON(response)
}

// AddGenerateTemplateTool registers the abap_generate_template tool.
func AddGenerateTemplateTool(s *server.MCPServer) {
	tool := mcp.NewTool(
		"abap_generate_template",
		mcp.WithDescription("Generate a non-executable skeleton template (variable declarations and data-access placeholders) from an ABAP snippet. Supported targets: typescript, javascript, python."),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("ABAP source text to generate a template from")),
		mcp.WithString("target",
			mcp.Description("Template target: typescript (default), javascript, python")),
		mcp.WithBoolean("banner",
			mcp.Description("Include a comment banner at the top of the template (default: true)")),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	s.AddTool(tool, generateTemplateHandler)
}

func generateTemplateHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.GetRawArguments().(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	code, ok := args["code"].(string)
	if !ok {
		return mcp.NewToolResultError("code parameter is required"), nil
	}

	opts := codegen.Options{Target: codegen.DefaultTarget, Banner: true}
	if target, ok := args["target"].(string); ok && target != "" {
		opts.Target = codegen.Target(target)
	}
	if banner, ok := args["banner"].(bool); ok {
		opts.Banner = banner
	}

	rendered := codegen.Generate(analyzer.Extract(code), opts)
	return toolResultJSON(map[string]any{
		"target":   string(opts.Target),
		"template": rendered,
	})
}

// AddValidateTool registers the abap_validate tool.
func AddValidateTool(s *server.MCPServer) {
	tool := mcp.NewTool(
		"abap_validate",
		mcp.WithDescription("Heuristically check whether generated code keeps at least as many conditional checks as the original ABAP had validation rules."),
		mcp.WithString("original",
			mcp.Required(),
			mcp.Description("Original ABAP source text")),
		mcp.WithString("generated",
			mcp.Required(),
			mcp.Description("Generated candidate text to check")),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	s.AddTool(tool, validateHandler)
}

func validateHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.GetRawArguments().(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	original, ok := args["original"].(string)
	if !ok {
		return mcp.NewToolResultError("original parameter is required"), nil
	}
	generated, ok := args["generated"].(string)
	if !ok {
		return mcp.NewToolResultError("generated parameter is required"), nil
	}

	return toolResultJSON(codegen.ValidateCoverage(original, generated))
}

// toolResultJSON marshals a payload and returns it as a text result
// (mcp-go convention).
func toolResultJSON(payload any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
