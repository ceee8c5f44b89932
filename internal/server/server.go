// Package server assembles and runs the Backlog MCP server.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/config"
	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/logging"
	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/resources"
	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/tools"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "mcp-backlog-server"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Transport names accepted by Serve.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Server hosts the MCP server wrapping the Backlog API.
type Server struct {
	cfg       config.Config
	mcpServer *server.MCPServer
}

// New creates a configured MCP server, registering the Backlog tool and the
// greeting resource. lookupEnv backs per-read environment lookups; pass
// os.LookupEnv outside of tests.
func New(cfg config.Config, lookupEnv resources.EnvLookup) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithRecovery(),
	)

	s := &Server{
		cfg:       cfg,
		mcpServer: mcpServer,
	}
	s.register(lookupEnv)
	return s
}

func (s *Server) register(lookupEnv resources.EnvLookup) {
	recentProjects := tools.NewListRecentProjectsTool(s.cfg)
	s.mcpServer.AddTool(recentProjects.GetTool(), recentProjects.Handle)

	greeting := resources.NewGreetingResource(lookupEnv)
	s.mcpServer.AddResource(greeting.GetResource(), greeting.Handle)
}

// Serve runs the server on the configured transport and blocks until the
// transport ends.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case TransportStdio, "":
		logging.Info().Str("transport", TransportStdio).Msg("starting Backlog MCP server")
		if err := server.ServeStdio(s.mcpServer); err != nil {
			return fmt.Errorf("failed to serve MCP server: %w", err)
		}
	case TransportHTTP:
		logging.Info().Str("transport", TransportHTTP).Str("addr", s.cfg.HTTPAddr).
			Msg("starting Backlog MCP server")
		if err := server.NewStreamableHTTPServer(s.mcpServer).Start(s.cfg.HTTPAddr); err != nil {
			return fmt.Errorf("failed to serve MCP server: %w", err)
		}
	default:
		return fmt.Errorf("unknown transport: %q", s.cfg.Transport)
	}
	return nil
}
