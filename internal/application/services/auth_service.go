// Package services provides authentication and profile token handling
package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/user"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/security"
	"github.com/shelfwise/shelfwise-go/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and decodes profile tokens and checks the admin
// password.
type AuthService struct {
	jwtSecret string
	logger    *logging.ChanneledLogger
}

// NewAuthService creates a new auth service. When no JWT secret is
// configured an ephemeral one is generated; tokens then survive only the
// current process.
func NewAuthService(logger *logging.ChanneledLogger) (*AuthService, error) {
	secret := config.JWTSecret
	if secret == "" {
		generated, err := security.GenerateSecureKey(64)
		if err != nil {
			return nil, fmt.Errorf("failed to generate ephemeral JWT secret: %w", err)
		}
		secret = generated
		logger.Auth().Warn("JWT_SECRET not configured, using ephemeral secret")
	}

	return &AuthService{
		jwtSecret: secret,
		logger:    logger,
	}, nil
}

// GenerateProfileToken encodes a purchaser profile into a signed JWT.
func (a *AuthService) GenerateProfileToken(profile *user.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":   profile.UserID,
		"email": profile.Email,
		"name":  profile.DisplayName,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(config.ProfileTokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.jwtSecret))
}

// DecodeProfileToken validates a profile token and returns its claims.
func (a *AuthService) DecodeProfileToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid profile token")
	}

	return claims, nil
}

// CheckAdminPassword verifies the admin password against the configured
// bcrypt hash.
func (a *AuthService) CheckAdminPassword(password string) error {
	if config.AdminPasswordHash == "" {
		return fmt.Errorf("admin login is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password)); err != nil {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}
