package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osteria-purchase-ledger/internal/api/service"
)

// SessionHandler handles HTTP requests for session lifecycle
type SessionHandler struct {
	sessionService service.SessionService
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(logger *slog.Logger, sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Create opens a new session with an empty ledger
func (h *SessionHandler) Create(c *gin.Context) {
	sess, err := h.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, "create_session", err)
		return
	}

	RespondCreated(c, SessionResponse{
		ID:        sess.ID.String(),
		CreatedAt: sess.CreatedAt.Format(time.RFC3339),
	})
}

// Close discards a session and everything recorded in it
func (h *SessionHandler) Close(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	if err := h.sessionService.CloseSession(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, "close_session", err)
		return
	}
	RespondNoContent(c)
}

// sessionID parses the :id path parameter, responding 400 when it is malformed
func sessionID(c *gin.Context, logger *slog.Logger) (uuid.UUID, bool) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		logger.Warn("Invalid session ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
