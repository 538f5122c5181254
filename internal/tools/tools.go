package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolCreateSession = "create_session"
	ToolCloseSession  = "close_session"
	ToolListSessions  = "list_sessions"
	ToolAppendDigit   = "append_digit"
	ToolSetOperator   = "set_operator"
	ToolCalculate     = "calculate"
	ToolClear         = "clear"
	ToolDeleteLast    = "delete_last"
	ToolPercentage    = "percentage"
	ToolToggleSign    = "toggle_sign"
	ToolSquareRoot    = "square_root"
	ToolSquare        = "square"
	ToolUndo          = "undo"
	ToolPressKeys     = "press_keys"
	ToolGetDisplay    = "get_display"
	ToolGetHistory    = "get_history"
	ToolClearHistory  = "clear_history"
)

const sessionIDArg = "session_id"

// withSessionID adds the optional session argument shared by every calculator tool
func withSessionID() mcp.ToolOption {
	return mcp.WithString(sessionIDArg,
		mcp.Description("Calculator session ID from create_session; the default session is used when omitted"),
	)
}

// getSession looks up the session named by the request
func getSession(sessions *session.Manager, req mcp.CallToolRequest) (*session.Session, error) {
	return sessions.Get(mcp.ParseString(req, sessionIDArg, ""))
}

// engineAction runs against a session's engine and returns a message for the result
type engineAction func(e *calculator.Engine) (message string, err error)

// runOnSession runs action on the requested session and renders the display afterwards
func runOnSession(sessions *session.Manager, req mcp.CallToolRequest, action engineAction) (*mcp.CallToolResult, error) {
	sess, err := getSession(sessions, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find session: %v", err)), nil
	}

	var toolResult results.DisplayToolResult
	err = sess.Do(func(e *calculator.Engine) error {
		message, err := action(e)
		if err != nil {
			return err
		}
		toolResult = results.NewDisplayToolResult(sess.ID, e.State(), message)
		return nil
	})
	if err != nil {
		slog.Debug("Calculator operation failed", "session_id", sess.ID, "error", err)
		return mcp.NewToolResultError(results.ErrorMessage(err)), nil
	}

	return jsonResult(toolResult)
}

// jsonResult renders a result struct as indented JSON text
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
