package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool handles calculate requests
type CalculateTool struct {
	sessions *session.Manager
}

// NewCalculateTool creates a new calculate tool
func NewCalculateTool(sessions *session.Manager) *CalculateTool {
	return &CalculateTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCalculate,
		mcp.WithDescription("Apply the pending operator to the stored and displayed numbers, like pressing '='"),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runOnSession(t.sessions, req, func(e *calculator.Engine) (string, error) {
		before := len(e.History())
		display, err := e.Calculate()
		if err != nil {
			return "", err
		}

		history := e.History()
		if len(history) == before {
			return "No operator pending; nothing to calculate.", nil
		}
		return fmt.Sprintf("%s = %s", history[len(history)-1].Expression, display), nil
	})
}
