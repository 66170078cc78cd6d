// Package server exposes the GitHub operations as MCP tools over stdio.
package server

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	mcp    *mcp.Server
	logger *slog.Logger
}

func New(version string, logger *slog.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    "octoscope",
		Version: version,
	}

	srv := mcp.NewServer(impl, nil)
	srv.AddReceivingMiddleware(loggingMiddleware(logger))

	return &Server{
		mcp:    srv,
		logger: logger,
	}
}

// MCP returns the underlying server for tool registration.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves on stdio until the client disconnects or ctx is cancelled.
// stdout belongs to the protocol; all logging goes elsewhere.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server", slog.String("transport", "stdio"))
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
