package config

import (
	"fmt"
	"os"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel    = "info"
	defaultMaxSessions = 64
)

// Default returns the configuration used when no file is given
func Default() *types.Config {
	return &types.Config{
		ServerName:  project.Name,
		LogLevel:    defaultLogLevel,
		MaxSessions: defaultMaxSessions,
		UndoDepth:   calculator.DefaultUndoDepth,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the defaults.
func Load(path string) (*types.Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Parse(data, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return config, nil
}

// Parse decodes YAML into config and validates the result. Fields missing
// from data keep their current values.
func Parse(data []byte, config *types.Config) error {
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return Validate(config)
}

// Validate checks that every field holds a usable value
func Validate(config *types.Config) error {
	if config.ServerName == "" {
		return fmt.Errorf("server_name must not be empty")
	}
	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return err
	}
	if config.MaxSessions < 0 {
		return fmt.Errorf("max_sessions must not be negative: %d", config.MaxSessions)
	}
	if config.UndoDepth < 0 {
		return fmt.Errorf("undo_depth must not be negative: %d", config.UndoDepth)
	}
	return nil
}
