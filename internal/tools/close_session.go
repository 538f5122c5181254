package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// CloseSessionTool handles close session requests
type CloseSessionTool struct {
	sessions *session.Manager
}

// NewCloseSessionTool creates a new close session tool
func NewCloseSessionTool(sessions *session.Manager) *CloseSessionTool {
	return &CloseSessionTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *CloseSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCloseSession,
		mcp.WithDescription("Close a calculator session, discarding its display and history"),
		mcp.WithString(sessionIDArg, mcp.Required(), mcp.Description("Calculator session ID to close")),
	)
}

// Handle processes the tool request
func (t *CloseSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := mcp.ParseString(req, sessionIDArg, "")
	if sessionID == "" {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	if err := t.sessions.Close(sessionID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to close session: %v", err)), nil
	}

	return jsonResult(results.SessionToolResult{
		Message:   "Closed session.",
		SessionID: sessionID,
	})
}
