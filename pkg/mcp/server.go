// Package mcp exposes the declaration explainer over the Model Context
// Protocol, so agents can ask for explanations through MCP tools instead
// of the CLI.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cexplain/cexplain/pkg/explain"
	"github.com/cexplain/cexplain/pkg/highlight"
	"github.com/cexplain/cexplain/pkg/parser"
	"github.com/cexplain/cexplain/pkg/session"
)

// Server wraps the MCP server with a shared typedef state. Typedefs made
// through the explain tool stay visible to later calls on the same server.
type Server struct {
	mcpServer *server.MCPServer
	state     *parser.State
	store     *session.Store
	mu        sync.Mutex
}

// Config holds server configuration.
type Config struct {
	Version string
	// Store, when set, seeds the typedef state and receives every
	// typedef defined through the explain tool.
	Store *session.Store
}

// New creates an MCP server exposing the explain and list_types tools.
func New(cfg Config) (*Server, error) {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	s := &Server{
		mcpServer: server.NewMCPServer(
			"cexplain",
			version,
			server.WithToolCapabilities(false),
		),
		state: parser.NewState(),
		store: cfg.Store,
	}

	if s.store != nil {
		if err := s.store.Load(s.state); err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
	}

	s.registerExplainTool()
	s.registerListTypesTool()
	return s, nil
}

// ServeStdio starts the server on the stdio transport and blocks until
// the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerExplainTool() {
	tool := mcp.NewTool("explain",
		mcp.WithDescription("Explain one or more C declarations in plain English. "+
			"Typedefs are remembered for later calls."),
		mcp.WithString("declaration",
			mcp.Required(),
			mcp.Description("C declaration source, e.g. \"char *(*(*bar)[5])(int);\""),
		),
		mcp.WithString("format",
			mcp.Description("Output format: plain (default) or html"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleExplain)
}

func (s *Server) registerListTypesTool() {
	tool := mcp.NewTool("list_types",
		mcp.WithDescription("List the typedef names currently known to the explainer."),
	)
	s.mcpServer.AddTool(tool, s.handleListTypes)
}

func (s *Server) handleExplain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	src, _ := args["declaration"].(string)
	if src == "" {
		return mcp.NewToolResultError("declaration is required"), nil
	}

	var formatter highlight.Formatter = highlight.PlainFormatter{}
	switch format, _ := args["format"].(string); format {
	case "", "plain":
	case "html":
		formatter = highlight.NewHTMLFormatter()
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", format)), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	decls, errs := parser.Parse(src, s.state)
	if len(errs) > 0 {
		var b strings.Builder
		b.WriteString("error(s) parsing declaration:")
		for _, e := range errs {
			b.WriteString("\n  ")
			b.WriteString(e.Error())
		}
		return mcp.NewToolResultError(b.String()), nil
	}

	var lines []string
	for _, decl := range decls {
		line, err := highlight.Render(formatter, explain.Explain(decl))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if s.store != nil {
		if err := s.store.Save(s.state); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleListTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	names := s.state.Names()
	s.mu.Unlock()

	if len(names) == 0 {
		return mcp.NewToolResultText("no types defined"), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}
