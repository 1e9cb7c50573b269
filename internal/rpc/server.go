package rpc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
)

// maxLineSize bounds a single request line. Snippets arrive inline in the
// request, so lines can be large.
const maxLineSize = 10 * 1024 * 1024

// Handler processes the params of one request and returns its result.
type Handler func(params map[string]any) (any, error)

// Server reads one JSON-RPC request per input line and writes one response
// per request. It holds no state across requests; a failed request never
// stops the loop.
type Server struct {
	in       io.Reader
	out      io.Writer
	handlers map[string]Handler
}

// NewServer creates a dispatcher bound to the given streams with the full
// method table registered.
func NewServer(in io.Reader, out io.Writer) *Server {
	return &Server{
		in:  in,
		out: out,
		handlers: map[string]Handler{
			"analyze":           handleAnalyze,
			"detect-patterns":   handleDetectPatterns,
			"generate-template": handleGenerateTemplate,
			"validate":          handleValidate,
			"extract-schema":    handleExtractSchema,
		},
	}
}

// Methods returns the supported method names. Useful for startup banners.
func (s *Server) Methods() []string {
	return []string{"analyze", "detect-patterns", "generate-template", "validate", "extract-schema"}
}

// Run processes requests until the input stream is exhausted. It returns
// nil on clean end-of-input; only stream-level failures are returned.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || allWhitespace(line) {
			continue
		}

		resp := s.dispatch(line)
		if err := s.write(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request stream: %w", err)
	}
	return nil
}

// dispatch decodes a line, routes it and builds the response. Every failure
// is contained here: a malformed line yields an error response with a null
// id (the id is not recoverable from invalid JSON), an unknown method
// yields an error response naming the method, and a handler panic is
// recovered and surfaced as an internal error.
func (s *Server) dispatch(line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return errorResponse(nil, CodeInternalError, fmt.Sprintf("invalid request: %v", err))
	}

	handler, ok := s.handlers[req.Method]
	if !ok {
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}

	result, err := s.invoke(handler, req.Params)
	if err != nil {
		log.Printf("request failed: method=%s err=%v", req.Method, err)
		return errorResponse(req.ID, CodeInternalError, err.Error())
	}
	return successResponse(req.ID, result)
}

func (s *Server) invoke(handler Handler, params map[string]any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	if params == nil {
		params = map[string]any{}
	}
	return handler(params)
}

func (s *Server) write(resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		// Response payloads are built from plain data types; a marshal
		// failure here means a handler returned something unencodable.
		data, _ = json.Marshal(errorResponse(resp.ID, CodeInternalError, "failed to encode response"))
	}
	_, err = fmt.Fprintf(s.out, "%s\n", data)
	return err
}

func allWhitespace(line []byte) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}
