package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// DisplayToolResult represents the result of a tool that reads or changes the display
type DisplayToolResult struct {
	Message   string            `json:"message"`
	SessionID string            `json:"session_id"`
	Display   string            `json:"display"`
	Pending   *PendingOperation `json:"pending,omitempty"`
}

// PendingOperation represents an operator waiting for its second operand
type PendingOperation struct {
	Operator string `json:"operator"`
	Operand  string `json:"operand"`
}

// NewDisplayToolResult creates a display result from a calculator state
func NewDisplayToolResult(sessionID string, state calculator.State, message string) DisplayToolResult {
	result := DisplayToolResult{
		Message:   message,
		SessionID: sessionID,
		Display:   state.Buffer,
	}
	if state.Operator != calculator.OperatorNone && state.HasOperand {
		result.Pending = &PendingOperation{
			Operator: string(state.Operator),
			Operand:  state.Operand,
		}
	}
	return result
}
