package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// SetOperatorTool handles set operator requests
type SetOperatorTool struct {
	sessions *session.Manager
}

// NewSetOperatorTool creates a new set operator tool
func NewSetOperatorTool(sessions *session.Manager) *SetOperatorTool {
	return &SetOperatorTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *SetOperatorTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolSetOperator,
		mcp.WithDescription("Choose the arithmetic operator to apply to the displayed number. "+
			"If an operator is already pending it is evaluated first, so chains evaluate left to right without precedence."),
		mcp.WithString("operator", mcp.Required(),
			mcp.Description("Operator to apply"),
			mcp.Enum(
				string(calculator.OperatorAdd),
				string(calculator.OperatorSubtract),
				string(calculator.OperatorMultiply),
				string(calculator.OperatorDivide),
			),
		),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *SetOperatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	op := calculator.Operator(mcp.ParseString(req, "operator", ""))
	if op == calculator.OperatorNone {
		return mcp.NewToolResultError("operator parameter is required"), nil
	}
	if !op.IsValid() {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid operator %q: expected one of + - * /", op)), nil
	}

	return runOnSession(t.sessions, req, func(e *calculator.Engine) (string, error) {
		if err := e.SetOperator(op); err != nil {
			return "", err
		}
		return fmt.Sprintf("Operator %s is pending.", op), nil
	})
}
