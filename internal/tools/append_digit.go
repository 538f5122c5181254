package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// AppendDigitTool handles append digit requests
type AppendDigitTool struct {
	sessions *session.Manager
}

// NewAppendDigitTool creates a new append digit tool
func NewAppendDigitTool(sessions *session.Manager) *AppendDigitTool {
	return &AppendDigitTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *AppendDigitTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolAppendDigit,
		mcp.WithDescription("Type digits or a decimal point into the calculator display, one key at a time"),
		mcp.WithString("digits", mcp.Required(), mcp.Description("Digits 0-9 and '.' to type, e.g. '7' or '3.14'")),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *AppendDigitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Clients sometimes send digits as a JSON number.
	digits, err := cast.ToStringE(mcp.ParseArgument(req, "digits", nil))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid digits parameter: %v", err)), nil
	}
	if digits == "" {
		return mcp.NewToolResultError("digits parameter is required"), nil
	}
	if i := strings.IndexFunc(digits, func(r rune) bool { return (r < '0' || r > '9') && r != '.' }); i >= 0 {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid digit %q: only 0-9 and '.' are allowed", digits[i:i+1])), nil
	}

	return runOnSession(t.sessions, req, func(e *calculator.Engine) (string, error) {
		for _, d := range digits {
			e.AppendDigit(string(d))
		}
		return fmt.Sprintf("Typed %s.", digits), nil
	})
}
