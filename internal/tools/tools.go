// Package tools defines the MCP tools served by this server.
package tools

import "errors"

// Tool names
const (
	ToolListRecentProjects = "list_recent_projects"
)

// Sort orders accepted by the recently viewed projects listing.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Count bounds for the recently viewed projects listing.
const (
	minProjectCount     = 1
	maxProjectCount     = 100
	defaultProjectCount = 20
)

// ErrUnknownTool reports a call to a tool name this server does not serve.
var ErrUnknownTool = errors.New("unknown tool")
