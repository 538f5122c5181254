package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/google/uuid"
)

// DefaultID is the session used when a caller does not name one
const DefaultID = "default"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionLimit    = errors.New("session limit reached")
)

// Manager owns the open calculator sessions
type Manager struct {
	sessions    map[string]*Session
	maxSessions int
	engineOpts  []calculator.Option
	mu          sync.RWMutex
}

// NewManager creates a session manager. A maxSessions of zero means no limit.
func NewManager(maxSessions int, engineOpts ...calculator.Option) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		engineOpts:  engineOpts,
	}
}

// Create opens a new session with a random ID
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.create(uuid.NewString())
}

func (m *Manager) create(id string) (*Session, error) {
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		return nil, fmt.Errorf("failed to create session: %w (%d)", ErrSessionLimit, m.maxSessions)
	}

	s := newSession(id, m.engineOpts...)
	m.sessions[id] = s
	slog.Debug("Created calculator session", "session_id", id, "open_sessions", len(m.sessions))
	return s, nil
}

// Get returns the session with the given ID. An empty ID selects the
// default session, which is created on first use.
func (m *Manager) Get(id string) (*Session, error) {
	if id == "" || id == DefaultID {
		return m.Default()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Default returns the default session, creating it if needed
func (m *Manager) Default() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[DefaultID]; ok {
		return s, nil
	}
	return m.create(DefaultID)
}

// Close discards a session and its history
func (m *Manager) Close(id string) error {
	if id == "" {
		id = DefaultID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)
	slog.Debug("Closed calculator session", "session_id", id, "open_sessions", len(m.sessions))
	return nil
}

// List returns the open sessions, oldest first
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Created.Equal(sessions[j].Created) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].Created.Before(sessions[j].Created)
	})
	return sessions
}

// Len returns the number of open sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
