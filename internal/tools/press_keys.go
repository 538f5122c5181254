package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles press keys requests
type PressKeysTool struct {
	sessions *session.Manager
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(sessions *session.Manager) *PressKeysTool {
	return &PressKeysTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press a sequence of calculator keys in order, e.g. '2+3*4='. "+
			"Keys: 0-9 and '.' type digits, + - * / choose an operator, = calculates, c clears, "+
			"< deletes the last character, % divides by 100, n toggles the sign, r takes the square root, "+
			"q squares, u undoes. Spaces are ignored. Operators evaluate left to right without precedence."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Keys to press")),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, "keys", "")
	if keys == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	return runOnSession(t.sessions, req, func(e *calculator.Engine) (string, error) {
		if _, err := keypad.PressSequence(e, keys); err != nil {
			return "", err
		}
		return fmt.Sprintf("Pressed %q.", keys), nil
	})
}
