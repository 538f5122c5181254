package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// EngineActionTool handles argument-free requests that act on the display
type EngineActionTool struct {
	sessions    *session.Manager
	name        string
	description string
	action      engineAction
}

// NewClearTool creates a tool that resets the display and pending operator
func NewClearTool(sessions *session.Manager) *EngineActionTool {
	return &EngineActionTool{
		sessions:    sessions,
		name:        ToolClear,
		description: "Reset the display to 0 and drop any pending operator. History is kept.",
		action: func(e *calculator.Engine) (string, error) {
			e.Clear()
			return "Cleared.", nil
		},
	}
}

// NewDeleteLastTool creates a tool that removes the last typed character
func NewDeleteLastTool(sessions *session.Manager) *EngineActionTool {
	return &EngineActionTool{
		sessions:    sessions,
		name:        ToolDeleteLast,
		description: "Remove the last character of the display, like backspace",
		action: func(e *calculator.Engine) (string, error) {
			e.DeleteLast()
			return "Deleted last character.", nil
		},
	}
}

// NewPercentageTool creates a tool that divides the display by 100
func NewPercentageTool(sessions *session.Manager) *EngineActionTool {
	return &EngineActionTool{
		sessions:    sessions,
		name:        ToolPercentage,
		description: "Divide the displayed number by 100",
		action: func(e *calculator.Engine) (string, error) {
			e.Percentage()
			return "Applied percentage.", nil
		},
	}
}

// NewToggleSignTool creates a tool that negates the display
func NewToggleSignTool(sessions *session.Manager) *EngineActionTool {
	return &EngineActionTool{
		sessions:    sessions,
		name:        ToolToggleSign,
		description: "Toggle the sign of the displayed number",
		action: func(e *calculator.Engine) (string, error) {
			e.ToggleSign()
			return "Toggled sign.", nil
		},
	}
}

// NewSquareRootTool creates a tool that replaces the display with its square root
func NewSquareRootTool(sessions *session.Manager) *EngineActionTool {
	return &EngineActionTool{
		sessions:    sessions,
		name:        ToolSquareRoot,
		description: "Replace the displayed number with its square root. Fails for negative numbers.",
		action: func(e *calculator.Engine) (string, error) {
			if _, err := e.SquareRoot(); err != nil {
				return "", err
			}
			return "Applied square root.", nil
		},
	}
}

// NewSquareTool creates a tool that replaces the display with its square
func NewSquareTool(sessions *session.Manager) *EngineActionTool {
	return &EngineActionTool{
		sessions:    sessions,
		name:        ToolSquare,
		description: "Replace the displayed number with its square",
		action: func(e *calculator.Engine) (string, error) {
			e.Square()
			return "Applied square.", nil
		},
	}
}

// NewUndoTool creates a tool that reverts the last change to the display
func NewUndoTool(sessions *session.Manager) *EngineActionTool {
	return &EngineActionTool{
		sessions:    sessions,
		name:        ToolUndo,
		description: "Revert the display and pending operator to before the last change. History is not rolled back.",
		action: func(e *calculator.Engine) (string, error) {
			if _, ok := e.Undo(); !ok {
				return "Nothing to undo.", nil
			}
			return "Undid last change.", nil
		},
	}
}

// GetTool returns the MCP tool definition
func (t *EngineActionTool) GetTool() mcp.Tool {
	return mcp.NewTool(t.name,
		mcp.WithDescription(t.description),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *EngineActionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runOnSession(t.sessions, req, t.action)
}
