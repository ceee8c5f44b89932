package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/backlog"
	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/config"
	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/logging"
)

// resultTitle heads the text envelope returned by the tool.
const resultTitle = "Recently Viewed Projects"

// ListRecentProjectsTool lists the Backlog projects the authenticated user
// viewed most recently.
type ListRecentProjectsTool struct {
	cfg config.Config
}

// NewListRecentProjectsTool creates the tool from the startup configuration.
func NewListRecentProjectsTool(cfg config.Config) *ListRecentProjectsTool {
	return &ListRecentProjectsTool{
		cfg: cfg,
	}
}

// GetTool returns the MCP tool definition.
func (t *ListRecentProjectsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListRecentProjects,
		mcp.WithDescription("List the Backlog projects the authenticated user viewed most recently"),
		mcp.WithNumber("count",
			mcp.Description("Number of projects to return (1-100, default 20)"),
			mcp.Min(minProjectCount),
			mcp.Max(maxProjectCount),
			mcp.DefaultNumber(defaultProjectCount),
		),
		mcp.WithString("order",
			mcp.Description("Sort order of the results"),
			mcp.Enum(OrderAsc, OrderDesc),
			mcp.DefaultString(OrderDesc),
		),
	)
}

// Handle processes the tool request. Arguments outside their documented
// range resolve to defaults rather than failing; the credential check runs
// before any request leaves the process.
func (t *ListRecentProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if req.Params.Name != ToolListRecentProjects {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, req.Params.Name)
	}

	count := clampCount(mcp.ParseFloat64(req, "count", 0))
	order := normalizeOrder(mcp.ParseString(req, "order", ""))

	if t.cfg.APIKey == "" || t.cfg.SpaceURL == "" {
		return nil, fmt.Errorf("%w: BACKLOG_API_KEY and BACKLOG_SPACE_URL are required", config.ErrMissingEnv)
	}

	client := backlog.NewClient(t.cfg.SpaceURL, t.cfg.APIKey)
	projects, err := client.GetRecentlyViewedProjects(ctx, backlog.RecentlyViewedProjectsParams{
		Order: order,
		Count: count,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recently viewed projects: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal projects: %w", err)
	}

	logging.Debug().Int("count", count).Str("order", order).
		Int("projects", len(projects)).Msg("listed recently viewed projects")

	return mcp.NewToolResultText(resultTitle + "\n\n" + string(jsonBytes)), nil
}
