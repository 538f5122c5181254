package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// HistoryToolResult represents the result of the get history tool
type HistoryToolResult struct {
	Message   string         `json:"message"`
	SessionID string         `json:"session_id"`
	Count     int            `json:"count"`
	Entries   []HistoryEntry `json:"entries"`
}

// HistoryEntry represents one completed calculation.
// Result holds every digit of the computed value; Display is what the calculator showed.
type HistoryEntry struct {
	Index      int    `json:"index"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Display    string `json:"display"`
}

// NewHistoryEntries converts calculator records to history entries, numbered from 1
func NewHistoryEntries(records []calculator.Record) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(records))
	for i, r := range records {
		entries = append(entries, HistoryEntry{
			Index:      i + 1,
			Expression: r.Expression,
			Result:     calculator.FormatNumber(r.Result),
			Display:    calculator.FormatResult(r.Result),
		})
	}
	return entries
}
