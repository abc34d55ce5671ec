// ABOUTME: MCP server exposing the workout log to AI assistants over stdio.
// ABOUTME: Every tool call runs as the configured local user through the action layer.
package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/harperreed/lift/internal/actions"
	"github.com/harperreed/lift/internal/auth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Server wraps the MCP server with action-layer access.
type Server struct {
	mcpServer *mcp.Server
	svc       *actions.Service
	userID    string
	logger    *zap.Logger
}

// NewServer creates an MCP server that acts as userID.
func NewServer(svc *actions.Service, userID string, logger *zap.Logger) (*Server, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("mcp server needs a user id")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lift",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
		userID:    userID,
		logger:    logger.Named("mcp"),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio", zap.String("user", s.userID))
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// as attaches the server's user to ctx.
func (s *Server) as(ctx context.Context) context.Context {
	return auth.WithUser(ctx, s.userID)
}
