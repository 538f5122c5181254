package server

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handle sends one JSON-RPC message to the server and returns the response as JSON
func handle(t *testing.T, s *CalcServer, message string) string {
	t.Helper()
	response := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(message))
	require.NotNil(t, response)
	data, err := json.Marshal(response)
	require.NoError(t, err)
	return string(data)
}

func newTestServer() *CalcServer {
	return NewCalcServer(config.Default(), strings.NewReader(""), &bytes.Buffer{})
}

func initialize(t *testing.T, s *CalcServer) string {
	t.Helper()
	return handle(t, s, `{"jsonrpc":"2.0","id":0,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0.0"}}}`)
}

func TestServerName(t *testing.T) {
	tests := []struct {
		name       string
		serverName string
	}{
		{name: "default", serverName: config.Default().ServerName},
		{name: "configured", serverName: "test-calc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.ServerName = tt.serverName
			s := NewCalcServer(cfg, strings.NewReader(""), &bytes.Buffer{})

			response := initialize(t, s)
			assert.Contains(t, response, `"serverInfo":{"name":"`+tt.serverName+`"`)
		})
	}
}

func TestRegisteredTools(t *testing.T) {
	s := newTestServer()
	initialize(t, s)

	response := handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	for _, name := range []string{
		tools.ToolCreateSession, tools.ToolCloseSession, tools.ToolListSessions,
		tools.ToolAppendDigit, tools.ToolSetOperator, tools.ToolCalculate,
		tools.ToolClear, tools.ToolDeleteLast, tools.ToolPercentage,
		tools.ToolToggleSign, tools.ToolSquareRoot, tools.ToolSquare, tools.ToolUndo,
		tools.ToolPressKeys, tools.ToolGetDisplay, tools.ToolGetHistory, tools.ToolClearHistory,
	} {
		assert.Contains(t, response, `"name":"`+name+`"`)
	}
}

func TestRegisteredResourceTemplates(t *testing.T) {
	s := newTestServer()
	initialize(t, s)

	response := handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"resources/templates/list"}`)
	assert.Contains(t, response, "calc://sessions/{session_id}/history")
}

func TestCallTool(t *testing.T) {
	s := newTestServer()
	initialize(t, s)

	handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"press_keys","arguments":{"keys":"2+3*4"}}}`)
	response := handle(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"calculate","arguments":{}}}`)

	assert.Contains(t, response, `\"display\": \"20\"`)
	assert.NotContains(t, response, `"isError":true`)
}

func TestServeStopsWhenInputCloses(t *testing.T) {
	var stdout bytes.Buffer
	input := `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"
	s := NewCalcServer(config.Default(), strings.NewReader(input), &stdout)

	require.NoError(t, s.Serve(context.Background()))
	assert.Contains(t, stdout.String(), `"id":1`)
}
