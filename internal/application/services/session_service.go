// Package services provides visit and session handling
package services

import (
	"context"
	"fmt"

	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/user"
)

// SessionService issues browser sessions and resolves them back to users.
type SessionService struct {
	profiles *user.SQLProfileRepository
	logger   *logging.ChanneledLogger
}

// NewSessionService creates a new session service.
func NewSessionService(profiles *user.SQLProfileRepository, logger *logging.ChanneledLogger) *SessionService {
	return &SessionService{
		profiles: profiles,
		logger:   logger,
	}
}

// CreateVisit issues a fresh anonymous session.
func (s *SessionService) CreateVisit(ctx context.Context) (*user.Session, error) {
	session, err := s.profiles.CreateSession(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create visit session: %w", err)
	}

	s.logger.Session().Info("Visit session created", "sessionId", session.SessionID)
	return session, nil
}

// ResolveUser maps a session ID to its bound user ID. Unknown, expired, and
// unbound sessions all resolve to the empty (guest) user.
func (s *SessionService) ResolveUser(ctx context.Context, sessionID string) string {
	if sessionID == "" {
		return ""
	}

	session, err := s.profiles.FindSession(ctx, sessionID)
	if err != nil {
		s.logger.Session().Warn("Session lookup failed, treating as guest", "sessionId", sessionID, "error", err.Error())
		return ""
	}
	if session == nil || session.UserID == nil {
		return ""
	}
	return *session.UserID
}

// BindProfile attaches an identified user to an existing session.
func (s *SessionService) BindProfile(ctx context.Context, sessionID, userID string) error {
	if err := s.profiles.BindSessionToUser(ctx, sessionID, userID); err != nil {
		return fmt.Errorf("failed to bind profile to session: %w", err)
	}
	s.logger.Session().Info("Session bound to profile", "sessionId", sessionID, "userId", userID)
	return nil
}
