// Backlog MCP server. Exposes the Backlog API as an MCP tool and resource
// surface for LLM clients.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/config"
	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/logging"
	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/server"
)

func main() {
	// Load .env if present; variables already set in the environment win.
	_ = godotenv.Load()

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], os.Environ())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logging.Init(logging.Config{Level: logging.ParseLevel(cfg.LogLevel)})

	s := server.New(cfg, os.LookupEnv)
	if err := s.Serve(); err != nil {
		logging.Fatal().Err(err).Msg("MCP server error")
	}
}
