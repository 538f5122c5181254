package results

import "time"

// SessionToolResult represents the result of the create and close session tools
type SessionToolResult struct {
	Message   string     `json:"message"`
	SessionID string     `json:"session_id"`
	Created   *time.Time `json:"created,omitempty"`
}

// SessionListToolResult represents the result of the list sessions tool
type SessionListToolResult struct {
	Message  string        `json:"message"`
	Count    int           `json:"count"`
	Sessions []SessionInfo `json:"sessions"`
}

// SessionInfo summarizes an open session
type SessionInfo struct {
	SessionID    string    `json:"session_id"`
	Created      time.Time `json:"created"`
	Display      string    `json:"display"`
	HistoryCount int       `json:"history_count"`
}
