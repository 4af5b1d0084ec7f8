package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/osteria-purchase-ledger/internal/domain/ledger"
)

// Manager keeps the active sessions in memory
type Manager struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*Session
	idleTimeout time.Duration
	maxActive   int
	now         func() time.Time
	logger      *slog.Logger
}

// Options tunes session limits. Zero values disable the limit.
type Options struct {
	IdleTimeout time.Duration
	MaxActive   int
}

// NewManager creates an empty session manager
func NewManager(logger *slog.Logger, opts Options) *Manager {
	return &Manager{
		sessions:    make(map[uuid.UUID]*Session),
		idleTimeout: opts.IdleTimeout,
		maxActive:   opts.MaxActive,
		now:         time.Now,
		logger:      logger,
	}
}

// Create opens a new session with an empty ledger
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxActive > 0 && len(m.sessions) >= m.maxActive {
		m.logger.Warn("Session limit reached", "active_sessions", len(m.sessions), "max_active", m.maxActive)
		return nil, ErrTooManySessions
	}

	now := m.now()
	s := &Session{
		ID:        uuid.New(),
		Ledger:    ledger.New(),
		CreatedAt: now,
		lastSeen:  now,
	}
	m.sessions[s.ID] = s

	m.logger.Info("Session created", "session_id", s.ID.String(), "active_sessions", len(m.sessions))
	return s, nil
}

// Get returns an active session and refreshes its idle timer. Lookup,
// expiry and refresh happen under one lock so Sweep never drops a session
// that Get is about to hand out.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound{SessionID: id}
	}

	now := m.now()
	if m.expired(s, now) {
		delete(m.sessions, id)
		m.logger.Info("Session removed", "session_id", id.String(), "reason", "expired", "entries", s.Ledger.Len())
		return nil, ErrSessionNotFound{SessionID: id}
	}

	s.touch(now)
	return s, nil
}

// Close tears a session down, discarding its ledger
func (m *Manager) Close(id uuid.UUID) error {
	if !m.remove(id, "closed") {
		return ErrSessionNotFound{SessionID: id}
	}
	return nil
}

// Count returns the number of active sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops every session idle for longer than the idle timeout and
// returns how many were removed
func (m *Manager) Sweep() int {
	if m.idleTimeout <= 0 {
		return 0
	}

	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
			m.logger.Info("Session removed", "session_id", id.String(), "reason", "expired", "entries", s.Ledger.Len())
		}
	}
	return removed
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.idleTimeout > 0 && now.Sub(s.LastSeen()) > m.idleTimeout
}

func (m *Manager) remove(id uuid.UUID, reason string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return false
	}
	delete(m.sessions, id)

	m.logger.Info("Session removed", "session_id", id.String(), "reason", reason, "entries", s.Ledger.Len())
	return true
}
