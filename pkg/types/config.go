package types

// Config represents the configuration for the calc-mcp server
type Config struct {
	ServerName  string `yaml:"server_name" json:"server_name,omitempty"`
	LogLevel    string `yaml:"log_level" json:"log_level,omitempty"`
	MaxSessions int    `yaml:"max_sessions" json:"max_sessions"`
	UndoDepth   int    `yaml:"undo_depth" json:"undo_depth"`
}
