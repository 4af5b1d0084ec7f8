// Package session owns the lifecycle of purchase-ledger sessions. Each
// session has its own ledger; nothing outlives Close or idle expiry.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/osteria-purchase-ledger/internal/domain/ledger"
)

// ErrTooManySessions is returned when the active session cap is reached
var ErrTooManySessions = errors.New("maximum number of active sessions reached")

// ErrSessionNotFound indicates an unknown, closed or expired session
type ErrSessionNotFound struct {
	SessionID uuid.UUID
}

func (e ErrSessionNotFound) Error() string {
	return "session not found: " + e.SessionID.String()
}

// Is implements the errors.Is interface for ErrSessionNotFound
func (e ErrSessionNotFound) Is(target error) bool {
	t, ok := target.(ErrSessionNotFound)
	if !ok {
		return false
	}
	// An empty target SessionID matches any ErrSessionNotFound
	if t.SessionID == uuid.Nil {
		return true
	}
	return e.SessionID == t.SessionID
}

// Session binds one ledger to an explicit, caller-managed lifetime
type Session struct {
	ID        uuid.UUID
	Ledger    *ledger.Ledger
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

// LastSeen returns when the session was last accessed
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}
