// Package mcp serves the card tools over the Model Context Protocol: deck
// parsing, sheet generation and sheet merging as tools, the palette and the
// page grid as resources.
//
// Messages are newline-delimited JSON-RPC 2.0 on stdin/stdout, one request
// at a time. Register the binary with an MCP client as:
//
//	{
//	  "mcpServers": {
//	    "cardsheet": {
//	      "command": "cardsheet-mcp"
//	    }
//	  }
//	}
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Version is reported to clients during initialization.
const Version = "1.0.0"

// maxMessage bounds a single request line; inline CSV content can be large.
const maxMessage = 10 << 20

// Tool is a callable operation exposed to the client.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Handler     ToolHandler
}

// ToolHandler runs a tool. A returned error is reported to the client as a
// tool result flagged isError, not as a protocol error.
type ToolHandler func(args map[string]interface{}) (ToolResult, error)

// ToolResult is what a tool call returns.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is one piece of a tool result.
type ContentBlock struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"` // base64
}

// textResult wraps a message in a single text block.
func textResult(format string, args ...interface{}) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: fmt.Sprintf(format, args...)}}}
}

// Resource is a readable document identified by URI.
type Resource struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
	Handler     ResourceHandler
}

// ResourceHandler produces the contents of a resource.
type ResourceHandler func(uri string) ([]ResourceContent, error)

// ResourceContent is the body of a read resource.
type ResourceContent struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"` // base64
}

type methodFunc func(s *Server, params json.RawMessage) (interface{}, *rpcError)

var methods = map[string]methodFunc{
	"initialize":     (*Server).initialize,
	"ping":           func(*Server, json.RawMessage) (interface{}, *rpcError) { return struct{}{}, nil },
	"tools/list":     (*Server).listTools,
	"tools/call":     (*Server).callTool,
	"resources/list": (*Server).listResources,
	"resources/read": (*Server).readResource,
}

// Server dispatches MCP requests to registered tools and resources.
type Server struct {
	tools     map[string]Tool
	resources map[string]Resource
	input     io.Reader
	output    io.Writer
	logger    *zap.Logger
	mu        sync.Mutex
}

// NewServer returns a server on stdin and stdout.
func NewServer() *Server {
	return NewServerWithIO(os.Stdin, os.Stdout)
}

// NewServerWithIO returns a server reading requests from in and writing
// responses to out.
func NewServerWithIO(in io.Reader, out io.Writer) *Server {
	return &Server{
		tools:     make(map[string]Tool),
		resources: make(map[string]Resource),
		input:     in,
		output:    out,
		logger:    zap.NewNop(),
	}
}

// SetLogger sets the request logger. It must not write to the server's
// output stream.
func (s *Server) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// AddTool registers t, replacing any tool of the same name.
func (s *Server) AddTool(t Tool) {
	s.tools[t.Name] = t
}

// AddResource registers r, replacing any resource with the same URI.
func (s *Server) AddResource(r Resource) {
	s.resources[r.URI] = r
}

// Run serves requests until the input is exhausted.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.input)
	scanner.Buffer(make([]byte, 0, 64<<10), maxMessage)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("malformed request", zap.Error(err))
			s.reply(nil, nil, &rpcError{Code: codeParseError, Message: "Parse error", Data: err.Error()})
			continue
		}
		s.dispatch(req)
	}
	return scanner.Err()
}

func (s *Server) dispatch(req request) {
	start := time.Now()
	method, ok := methods[req.Method]
	if !ok {
		if !req.notification() {
			s.reply(req.ID, nil, &rpcError{Code: codeMethodNotFound, Message: "Method not found", Data: req.Method})
		}
		return
	}

	result, rerr := method(s, req.Params)
	s.logger.Debug("request handled",
		zap.String("method", req.Method),
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("failed", rerr != nil))
	if req.notification() {
		return
	}
	s.reply(req.ID, result, rerr)
}

func (s *Server) initialize(json.RawMessage) (interface{}, *rpcError) {
	return initializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: map[string]interface{}{
			"tools":     map[string]interface{}{},
			"resources": map[string]interface{}{},
		},
		ServerInfo: serverInfo{Name: "cardsheet-mcp", Version: Version},
	}, nil
}

func (s *Server) listTools(json.RawMessage) (interface{}, *rpcError) {
	list := make([]toolDescriptor, 0, len(s.tools))
	for _, t := range s.tools {
		list = append(list, toolDescriptor{Name: t.Name, Description: t.Description, InputSchema: t.InputSchema})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return map[string]interface{}{"tools": list}, nil
}

func (s *Server) callTool(raw json.RawMessage) (interface{}, *rpcError) {
	var params toolCallParams
	if rerr := decodeParams(raw, &params); rerr != nil {
		return nil, rerr
	}
	tool, ok := s.tools[params.Name]
	if !ok {
		return nil, &rpcError{Code: codeInvalidParams, Message: "Unknown tool", Data: params.Name}
	}

	result, err := tool.Handler(params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", zap.String("tool", params.Name), zap.Error(err))
		result = textResult("Error: %v", err)
		result.IsError = true
	}
	return result, nil
}

func (s *Server) listResources(json.RawMessage) (interface{}, *rpcError) {
	list := make([]resourceDescriptor, 0, len(s.resources))
	for _, r := range s.resources {
		list = append(list, resourceDescriptor{URI: r.URI, Name: r.Name, Description: r.Description, MIMEType: r.MIMEType})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].URI < list[j].URI })
	return map[string]interface{}{"resources": list}, nil
}

func (s *Server) readResource(raw json.RawMessage) (interface{}, *rpcError) {
	var params resourceReadParams
	if rerr := decodeParams(raw, &params); rerr != nil {
		return nil, rerr
	}
	res, ok := s.resources[params.URI]
	if !ok {
		return nil, &rpcError{Code: codeInvalidParams, Message: "Unknown resource", Data: params.URI}
	}

	contents, err := res.Handler(params.URI)
	if err != nil {
		s.logger.Warn("resource failed", zap.String("uri", params.URI), zap.Error(err))
		return nil, &rpcError{Code: codeInternalError, Message: "Resource error", Data: err.Error()}
	}
	return map[string]interface{}{"contents": contents}, nil
}

// reply writes one response line. Writes are serialized.
func (s *Server) reply(id *json.RawMessage, result interface{}, rerr *rpcError) {
	resp := response{JSONRPC: "2.0", ID: id, Result: result, Error: rerr}
	if rerr != nil {
		resp.Result = nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("encoding response", zap.Error(err))
		return
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.output.Write(data); err != nil {
		s.logger.Error("writing response", zap.Error(err))
	}
}
