package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetHistoryTool handles get history requests
type GetHistoryTool struct {
	sessions *session.Manager
}

// NewGetHistoryTool creates a new get history tool
func NewGetHistoryTool(sessions *session.Manager) *GetHistoryTool {
	return &GetHistoryTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *GetHistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetHistory,
		mcp.WithDescription("List the completed calculations of a session, oldest first"),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *GetHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := getSession(t.sessions, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find session: %v", err)), nil
	}

	return jsonResult(historyResult(sess))
}

func historyResult(sess *session.Session) results.HistoryToolResult {
	var records []calculator.Record
	_ = sess.Do(func(e *calculator.Engine) error {
		records = e.History()
		return nil
	})

	toolResult := results.HistoryToolResult{
		SessionID: sess.ID,
		Count:     len(records),
		Entries:   results.NewHistoryEntries(records),
	}
	if toolResult.Count == 0 {
		toolResult.Message = "No calculations yet."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d calculations.", toolResult.Count)
	}
	return toolResult
}
