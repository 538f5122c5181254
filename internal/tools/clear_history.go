package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearHistoryTool handles clear history requests
type ClearHistoryTool struct {
	sessions *session.Manager
}

// NewClearHistoryTool creates a new clear history tool
func NewClearHistoryTool(sessions *session.Manager) *ClearHistoryTool {
	return &ClearHistoryTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *ClearHistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClearHistory,
		mcp.WithDescription("Delete every completed calculation from a session's history. The display is unchanged."),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *ClearHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runOnSession(t.sessions, req, func(e *calculator.Engine) (string, error) {
		n := len(e.History())
		e.ClearHistory()
		return fmt.Sprintf("Cleared %d calculations from history.", n), nil
	})
}
