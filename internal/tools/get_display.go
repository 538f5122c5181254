package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetDisplayTool handles get display requests
type GetDisplayTool struct {
	sessions *session.Manager
}

// NewGetDisplayTool creates a new get display tool
func NewGetDisplayTool(sessions *session.Manager) *GetDisplayTool {
	return &GetDisplayTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *GetDisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetDisplay,
		mcp.WithDescription("Read the calculator display and any pending operator without changing anything"),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *GetDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runOnSession(t.sessions, req, func(e *calculator.Engine) (string, error) {
		return "", nil
	})
}
