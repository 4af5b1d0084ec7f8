package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/osteria-purchase-ledger/internal/session"
)

// SessionServiceImpl implements the SessionService interface
type SessionServiceImpl struct {
	sessions *session.Manager
}

// NewSessionService creates a new session service
func NewSessionService(sessions *session.Manager) SessionService {
	return &SessionServiceImpl{
		sessions: sessions,
	}
}

// CreateSession opens a session with an empty ledger
func (s *SessionServiceImpl) CreateSession(_ context.Context) (*session.Session, error) {
	return s.sessions.Create()
}

// CloseSession discards a session and everything recorded in it
func (s *SessionServiceImpl) CloseSession(_ context.Context, sessionID uuid.UUID) error {
	return s.sessions.Close(sessionID)
}
