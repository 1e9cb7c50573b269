// Package rpc implements the newline-delimited JSON-RPC 2.0 loop the
// analyzer speaks over stdin/stdout: one request per input line, exactly
// one response line per request, diagnostics on stderr only.
package rpc

// Error codes are fixed constants shared with other implementations of the
// protocol; they follow the JSON-RPC 2.0 reserved ranges.
const (
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// Request is one decoded input line. Unknown fields are ignored; id is
// optional and echoed verbatim when present.
type Request struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
	ID     any            `json:"id"`
}

// Response is one output line. Exactly one of Result or Error is set.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is the JSON-RPC error descriptor.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func successResponse(id, result any) Response {
	return Response{JSONRPC: "2.0", ID: id, Result: result}
}

// errorResponse builds a failure response. A nil id is serialized as JSON
// null, which is the deliberate behavior for lines whose id could not be
// recovered.
func errorResponse(id any, code int, message string) Response {
	return Response{JSONRPC: "2.0", ID: id, Error: &Error{Code: code, Message: message}}
}
