package rpc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runLines feeds input lines to a fresh server and returns the decoded
// response for each output line.
func runLines(t *testing.T, lines ...string) []map[string]any {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	out := &bytes.Buffer{}

	err := NewServer(in, out).Run()
	require.NoError(t, err)

	responses := []map[string]any{}
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &resp), "response line: %s", line)
		responses = append(responses, resp)
	}
	return responses
}

func errorOf(t *testing.T, resp map[string]any) (code float64, message string) {
	t.Helper()
	errObj, ok := resp["error"].(map[string]any)
	require.True(t, ok, "expected error in response: %v", resp)
	return errObj["code"].(float64), errObj["message"].(string)
}

func TestUnknownMethod(t *testing.T) {
	t.Parallel()

	responses := runLines(t, `{"method":"translate","params":{},"id":7}`)

	require.Len(t, responses, 1)
	assert.Equal(t, "2.0", responses[0]["jsonrpc"])
	assert.Equal(t, float64(7), responses[0]["id"])

	code, message := errorOf(t, responses[0])
	assert.Equal(t, float64(CodeMethodNotFound), code)
	assert.Contains(t, message, "translate")
}

func TestMalformedLineThenValidLine(t *testing.T) {
	t.Parallel()

	responses := runLines(t,
		`this is not json`,
		`{"method":"detect-patterns","params":{"code":"AUTHORITY-CHECK OBJECT 'X'."},"id":"a"}`,
	)

	require.Len(t, responses, 2)

	// Malformed input: internal-failure code, id null since it cannot be
	// recovered from invalid JSON.
	code, _ := errorOf(t, responses[0])
	assert.Equal(t, float64(CodeInternalError), code)
	assert.Nil(t, responses[0]["id"])

	// The loop keeps going.
	assert.Equal(t, "a", responses[1]["id"])
	result := responses[1]["result"].(map[string]any)
	assert.Contains(t, result["patterns"], "Authorization Object")
}

func TestAnalyzeResultShape(t *testing.T) {
	t.Parallel()

	req := map[string]any{
		"method": "analyze",
		"params": map[string]any{"code": "SELECT kbetr FROM konv INTO lv_price.\nIF lv_price > 0.\nENDIF."},
		"id":     1,
	}
	line, err := json.Marshal(req)
	require.NoError(t, err)

	responses := runLines(t, string(line))
	require.Len(t, responses, 1)

	result := responses[0]["result"].(map[string]any)
	data := result["data"].(map[string]any)
	metadata := data["metadata"].(map[string]any)

	assert.Equal(t, "CUSTOM", metadata["module"])
	assert.Equal(t, float64(1), metadata["complexity"])
	assert.Equal(t, float64(3), metadata["linesOfCode"])
	assert.Contains(t, data["tables"], "KONV")
	assert.Contains(t, data["documentation"], "Module: CUSTOM")
}

func TestGenerateTemplateMethod(t *testing.T) {
	t.Parallel()

	req := map[string]any{
		"method": "generate-template",
		"params": map[string]any{
			"code":   "DATA lv_price TYPE p DECIMALS 2.",
			"target": "python",
			"banner": false,
		},
		"id": 2,
	}
	line, err := json.Marshal(req)
	require.NoError(t, err)

	responses := runLines(t, string(line))
	require.Len(t, responses, 1)

	result := responses[0]["result"].(map[string]any)
	assert.Equal(t, "python", result["target"])
	assert.Contains(t, result["template"], "lv_price = None  # number")
	assert.NotContains(t, result["template"], "Generated skeleton")
}

func TestGenerateTemplateUnsupportedTargetIsNotAnError(t *testing.T) {
	t.Parallel()

	responses := runLines(t, `{"method":"generate-template","params":{"code":"","target":"cobol"},"id":3}`)

	require.Len(t, responses, 1)
	result := responses[0]["result"].(map[string]any)
	assert.Contains(t, result["template"], "unsupported template target: cobol")
}

func TestValidateMethod(t *testing.T) {
	t.Parallel()

	req := map[string]any{
		"method": "validate",
		"params": map[string]any{
			"original":  "IF lv_a > 0.\nENDIF.",
			"generated": "no checks here",
		},
		"id": 4,
	}
	line, err := json.Marshal(req)
	require.NoError(t, err)

	responses := runLines(t, string(line))
	require.Len(t, responses, 1)

	result := responses[0]["result"].(map[string]any)
	assert.Equal(t, "warning", result["status"])
	assert.Equal(t, float64(1), result["originalChecks"])
	assert.Equal(t, float64(0), result["generatedChecks"])
}

func TestExtractSchemaMethod(t *testing.T) {
	t.Parallel()

	responses := runLines(t, `{"method":"extract-schema","params":{"code":"SELECT * FROM vbak. INSERT ztab FROM ls_row."},"id":5}`)

	require.Len(t, responses, 1)
	result := responses[0]["result"].(map[string]any)

	tables := result["tables"].([]any)
	names := []string{}
	for _, entry := range tables {
		names = append(names, entry.(map[string]any)["name"].(string))
	}
	assert.Contains(t, names, "VBAK")

	operations := result["operations"].([]any)
	require.Len(t, operations, 2)
	first := operations[0].(map[string]any)
	assert.Equal(t, "SELECT", first["operation"])
	assert.Equal(t, "VBAK", first["table"])
	assert.Equal(t, "Sales Document: Header Data", first["description"])
}

func TestMissingParameterIsContainedError(t *testing.T) {
	t.Parallel()

	responses := runLines(t,
		`{"method":"analyze","params":{},"id":6}`,
		`{"method":"analyze","params":{"code":""},"id":7}`,
	)

	require.Len(t, responses, 2)
	code, message := errorOf(t, responses[0])
	assert.Equal(t, float64(CodeInternalError), code)
	assert.Contains(t, message, "code")

	// The failure did not break the loop.
	assert.Equal(t, float64(7), responses[1]["id"])
	assert.NotNil(t, responses[1]["result"])
}

func TestEmptyLinesAreSkipped(t *testing.T) {
	t.Parallel()

	responses := runLines(t, "", "   ", `{"method":"detect-patterns","params":{"code":""},"id":8}`)
	require.Len(t, responses, 1)
	assert.Equal(t, float64(8), responses[0]["id"])
}

func TestIDEchoedVerbatim(t *testing.T) {
	t.Parallel()

	t.Run("string id", func(t *testing.T) {
		responses := runLines(t, `{"method":"detect-patterns","params":{"code":""},"id":"req-123"}`)
		require.Len(t, responses, 1)
		assert.Equal(t, "req-123", responses[0]["id"])
	})

	t.Run("absent id becomes null", func(t *testing.T) {
		responses := runLines(t, `{"method":"detect-patterns","params":{"code":""}}`)
		require.Len(t, responses, 1)
		id, present := responses[0]["id"]
		assert.True(t, present)
		assert.Nil(t, id)
	})
}

func TestExtraRequestFieldsIgnored(t *testing.T) {
	t.Parallel()

	responses := runLines(t, `{"jsonrpc":"2.0","method":"detect-patterns","params":{"code":""},"id":9,"extra":"ignored"}`)
	require.Len(t, responses, 1)
	assert.Equal(t, float64(9), responses[0]["id"])
	assert.NotNil(t, responses[0]["result"])
}
