package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	historyURIPrefix = "calc://sessions/"
	historyURISuffix = "/history"

	// HistoryURITemplate addresses the history of one session
	HistoryURITemplate = historyURIPrefix + "{session_id}" + historyURISuffix
)

// HistoryResource serves session histories as MCP resources
type HistoryResource struct {
	sessions *session.Manager
}

// NewHistoryResource creates a new history resource
func NewHistoryResource(sessions *session.Manager) *HistoryResource {
	return &HistoryResource{sessions: sessions}
}

// GetTemplate returns the MCP resource template definition
func (r *HistoryResource) GetTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(HistoryURITemplate, "Calculation history",
		mcp.WithTemplateDescription("Completed calculations of a calculator session, oldest first"),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// Handle processes the resource read request
func (r *HistoryResource) Handle(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	sessionID, err := historySessionID(uri)
	if err != nil {
		return nil, err
	}

	sess, err := r.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(historyResult(sess), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

// historySessionID extracts the session ID from a history resource URI
func historySessionID(uri string) (string, error) {
	if len(uri) < len(historyURIPrefix)+len(historyURISuffix) ||
		!strings.HasPrefix(uri, historyURIPrefix) || !strings.HasSuffix(uri, historyURISuffix) {
		return "", fmt.Errorf("invalid history URI, expected '%s', got: %s", HistoryURITemplate, uri)
	}

	id := strings.TrimSuffix(strings.TrimPrefix(uri, historyURIPrefix), historyURISuffix)
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("invalid session ID in history URI: %s", uri)
	}
	return id, nil
}
