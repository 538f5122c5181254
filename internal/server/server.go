package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the calculator MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	sessions  *session.Manager
	config    *types.Config
	stdin     io.Reader
	stdout    io.Writer
}

// NewCalcServer creates a new calculator MCP server serving on stdin and stdout
func NewCalcServer(config *types.Config, stdin io.Reader, stdout io.Writer) *CalcServer {
	mcpServer := server.NewMCPServer(config.ServerName, project.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)
	sessions := session.NewManager(config.MaxSessions, calculator.WithUndoDepth(config.UndoDepth))

	s := &CalcServer{
		mcpServer: mcpServer,
		sessions:  sessions,
		config:    config,
		stdin:     stdin,
		stdout:    stdout,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Serve serves MCP requests over stdio until ctx is cancelled or stdin closes
func (s *CalcServer) Serve(ctx context.Context) error {
	slog.Info("Starting calculator MCP server", "name", s.config.ServerName, "version", project.Version,
		"max_sessions", s.config.MaxSessions, "undo_depth", s.config.UndoDepth)

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, s.stdin, s.stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	slog.Info("Calculator MCP server stopped", "open_sessions", s.sessions.Len())
	return nil
}

// MCPServer returns the underlying MCP server
func (s *CalcServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *CalcServer) registerTools() {
	createSessionTool := tools.NewCreateSessionTool(s.sessions)
	s.mcpServer.AddTool(createSessionTool.GetTool(), createSessionTool.Handle)

	closeSessionTool := tools.NewCloseSessionTool(s.sessions)
	s.mcpServer.AddTool(closeSessionTool.GetTool(), closeSessionTool.Handle)

	listSessionsTool := tools.NewListSessionsTool(s.sessions)
	s.mcpServer.AddTool(listSessionsTool.GetTool(), listSessionsTool.Handle)

	appendDigitTool := tools.NewAppendDigitTool(s.sessions)
	s.mcpServer.AddTool(appendDigitTool.GetTool(), appendDigitTool.Handle)

	setOperatorTool := tools.NewSetOperatorTool(s.sessions)
	s.mcpServer.AddTool(setOperatorTool.GetTool(), setOperatorTool.Handle)

	calculateTool := tools.NewCalculateTool(s.sessions)
	s.mcpServer.AddTool(calculateTool.GetTool(), calculateTool.Handle)

	for _, actionTool := range []*tools.EngineActionTool{
		tools.NewClearTool(s.sessions),
		tools.NewDeleteLastTool(s.sessions),
		tools.NewPercentageTool(s.sessions),
		tools.NewToggleSignTool(s.sessions),
		tools.NewSquareRootTool(s.sessions),
		tools.NewSquareTool(s.sessions),
		tools.NewUndoTool(s.sessions),
	} {
		s.mcpServer.AddTool(actionTool.GetTool(), actionTool.Handle)
	}

	pressKeysTool := tools.NewPressKeysTool(s.sessions)
	s.mcpServer.AddTool(pressKeysTool.GetTool(), pressKeysTool.Handle)

	getDisplayTool := tools.NewGetDisplayTool(s.sessions)
	s.mcpServer.AddTool(getDisplayTool.GetTool(), getDisplayTool.Handle)

	getHistoryTool := tools.NewGetHistoryTool(s.sessions)
	s.mcpServer.AddTool(getHistoryTool.GetTool(), getHistoryTool.Handle)

	clearHistoryTool := tools.NewClearHistoryTool(s.sessions)
	s.mcpServer.AddTool(clearHistoryTool.GetTool(), clearHistoryTool.Handle)
}

func (s *CalcServer) registerResources() {
	historyResource := tools.NewHistoryResource(s.sessions)
	s.mcpServer.AddResourceTemplate(historyResource.GetTemplate(), historyResource.Handle)
}
