// Package user provides SQL-based persistence for purchaser profiles and
// sessions.
package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/database"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/security"
	"github.com/shelfwise/shelfwise-go/pkg/config"
)

// Profile represents one purchaser account.
type Profile struct {
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Session links an anonymous or identified browser session to a user.
type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    *string   `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SQLProfileRepository persists profiles and sessions.
type SQLProfileRepository struct {
	db *database.DB
}

// NewSQLProfileRepository creates a new instance of the repository.
func NewSQLProfileRepository(db *database.DB) *SQLProfileRepository {
	return &SQLProfileRepository{db: db}
}

// CreateProfile stores a new purchaser profile and returns it.
func (r *SQLProfileRepository) CreateProfile(ctx context.Context, email, displayName string) (*Profile, error) {
	profile := &Profile{
		UserID:      security.GenerateULID(),
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email, display_name, created_at) VALUES (?, ?, ?, ?)`,
		profile.UserID, profile.Email, profile.DisplayName, profile.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	return profile, nil
}

// FindProfileByEmail returns the profile for an email, or nil when absent.
func (r *SQLProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*Profile, error) {
	profile := &Profile{}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, email, display_name, created_at FROM profiles WHERE email = ?`, email).
		Scan(&profile.UserID, &profile.Email, &profile.DisplayName, &profile.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	return profile, nil
}

// CreateSession issues a new session, optionally bound to a user.
func (r *SQLProfileRepository) CreateSession(ctx context.Context, userID *string) (*Session, error) {
	now := time.Now().UTC()
	session := &Session{
		SessionID: security.GenerateULID(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(config.SessionTTL),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		session.SessionID, session.UserID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return session, nil
}

// FindSession returns the unexpired session for an ID, or nil when absent.
func (r *SQLProfileRepository) FindSession(ctx context.Context, sessionID string) (*Session, error) {
	session := &Session{}
	err := r.db.QueryRowContext(ctx,
		`SELECT session_id, user_id, created_at, expires_at FROM sessions WHERE session_id = ? AND expires_at > ?`,
		sessionID, time.Now().UTC()).
		Scan(&session.SessionID, &session.UserID, &session.CreatedAt, &session.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	return session, nil
}

// BindSessionToUser attaches an identified user to an existing session.
func (r *SQLProfileRepository) BindSessionToUser(ctx context.Context, sessionID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET user_id = ? WHERE session_id = ?`, userID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to bind session to user: %w", err)
	}
	return nil
}
