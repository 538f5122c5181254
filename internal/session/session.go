package session

import (
	"sync"
	"time"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// Session is a calculator engine shared by callers that take turns using it
type Session struct {
	ID      string
	Created time.Time

	mu     sync.Mutex
	engine *calculator.Engine
}

func newSession(id string, opts ...calculator.Option) *Session {
	return &Session{
		ID:      id,
		Created: time.Now(),
		engine:  calculator.NewEngine(opts...),
	}
}

// Do runs fn with exclusive access to the session's engine
func (s *Session) Do(fn func(e *calculator.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.engine)
}
