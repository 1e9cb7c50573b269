package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func decodeTextResult(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "should be text content")

	payload := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(textContent.Text), &payload))
	return payload
}

func TestAnalyzeHandler(t *testing.T) {
	t.Parallel()

	request := toolRequest(map[string]interface{}{
		"code": "SELECT kbetr FROM konv INTO lv_price.\nIF lv_price > 0.\nENDIF.",
	})

	result, err := analyzeHandler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	payload := decodeTextResult(t, result)
	metadata := payload["metadata"].(map[string]any)
	assert.Equal(t, "CUSTOM", metadata["module"])
	assert.Contains(t, payload["documentation"], "Module: CUSTOM")
}

func TestAnalyzeHandlerMissingCode(t *testing.T) {
	t.Parallel()

	result, err := analyzeHandler(context.Background(), toolRequest(map[string]interface{}{}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestGenerateTemplateHandler(t *testing.T) {
	t.Parallel()

	request := toolRequest(map[string]interface{}{
		"code":   "DATA lv_price TYPE p DECIMALS 2.",
		"target": "python",
		"banner": false,
	})

	result, err := generateTemplateHandler(context.Background(), request)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	payload := decodeTextResult(t, result)
	assert.Equal(t, "python", payload["target"])
	assert.Contains(t, payload["template"], "lv_price = None  # number")
}

func TestValidateHandler(t *testing.T) {
	t.Parallel()

	request := toolRequest(map[string]interface{}{
		"original":  "IF lv_a > 0.\nENDIF.",
		"generated": "if (a > 0) { }",
	})

	result, err := validateHandler(context.Background(), request)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	payload := decodeTextResult(t, result)
	assert.Equal(t, "ok", payload["status"])
}

func TestNewRegistersTools(t *testing.T) {
	t.Parallel()

	server := New("test")
	assert.NotNil(t, server)
}
