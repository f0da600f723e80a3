// Package services provides purchaser profile management
package services

import (
	"context"
	"fmt"

	"github.com/shelfwise/shelfwise-go/internal/infrastructure/email"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/user"
)

// ProfileService creates purchaser profiles and issues their tokens.
type ProfileService struct {
	profiles *user.SQLProfileRepository
	sessions *SessionService
	auth     *AuthService
	email    email.Service
	logger   *logging.ChanneledLogger
}

// NewProfileService creates a new profile service with its dependencies.
func NewProfileService(
	profiles *user.SQLProfileRepository,
	sessions *SessionService,
	auth *AuthService,
	emailService email.Service,
	logger *logging.ChanneledLogger,
) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		sessions: sessions,
		auth:     auth,
		email:    emailService,
		logger:   logger,
	}
}

// CreateProfileResult is what a successful profile creation returns.
type CreateProfileResult struct {
	Profile *user.Profile `json:"profile"`
	Token   string        `json:"token"`
}

// CreateProfile registers a purchaser, binds them to their session, and
// sends the welcome email. The email is best effort: a send failure is
// logged, never returned.
func (s *ProfileService) CreateProfile(ctx context.Context, sessionID, emailAddr, displayName string) (*CreateProfileResult, error) {
	if emailAddr == "" {
		return nil, fmt.Errorf("email is required")
	}

	existing, err := s.profiles.FindProfileByEmail(ctx, emailAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a profile already exists for this email")
	}

	profile, err := s.profiles.CreateProfile(ctx, emailAddr, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if sessionID != "" {
		if err := s.sessions.BindProfile(ctx, sessionID, profile.UserID); err != nil {
			s.logger.Session().Warn("Failed to bind new profile to session",
				"sessionId", sessionID, "userId", profile.UserID, "error", err.Error())
		}
	}

	token, err := s.auth.GenerateProfileToken(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile token: %w", err)
	}

	if err := s.email.SendWelcomeEmail(profile.Email, profile.DisplayName); err != nil {
		s.logger.System().Warn("Welcome email send failed", "userId", profile.UserID, "error", err.Error())
	}

	return &CreateProfileResult{Profile: profile, Token: token}, nil
}
