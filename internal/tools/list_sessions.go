package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListSessionsTool handles list sessions requests
type ListSessionsTool struct {
	sessions *session.Manager
}

// NewListSessionsTool creates a new list sessions tool
func NewListSessionsTool(sessions *session.Manager) *ListSessionsTool {
	return &ListSessionsTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *ListSessionsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListSessions,
		mcp.WithDescription("List open calculator sessions with their current display"),
	)
}

// Handle processes the tool request
func (t *ListSessionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toolResult := results.SessionListToolResult{
		Sessions: make([]results.SessionInfo, 0),
	}

	for _, sess := range t.sessions.List() {
		info := results.SessionInfo{
			SessionID: sess.ID,
			Created:   sess.Created,
		}
		_ = sess.Do(func(e *calculator.Engine) error {
			info.Display = e.CurrentInput()
			info.HistoryCount = len(e.History())
			return nil
		})
		toolResult.Sessions = append(toolResult.Sessions, info)
	}

	toolResult.Count = len(toolResult.Sessions)
	if toolResult.Count == 0 {
		toolResult.Message = "No open sessions. The default session is created on first use."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d open sessions.", toolResult.Count)
	}

	return jsonResult(toolResult)
}
