package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreateSessionTool handles create session requests
type CreateSessionTool struct {
	sessions *session.Manager
}

// NewCreateSessionTool creates a new create session tool
func NewCreateSessionTool(sessions *session.Manager) *CreateSessionTool {
	return &CreateSessionTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *CreateSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCreateSession,
		mcp.WithDescription("Create a new calculator session with its own display and history, returning the session ID"),
	)
}

// Handle processes the tool request
func (t *CreateSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := t.sessions.Create()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create session: %v", err)), nil
	}

	created := sess.Created
	return jsonResult(results.SessionToolResult{
		Message:   "Created session. Pass the session_id to other tools to use it.",
		SessionID: sess.ID,
		Created:   &created,
	})
}
