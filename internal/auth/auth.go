// Package auth authenticates the site owner for the write endpoints.
//
// There is a single owner account configured through the environment as
// an email plus a bcrypt password hash. A successful login issues a
// short-lived HS256 token that the write endpoints require.
package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/estatehub/api/pkg/jwt"
)

// Config holds the owner credentials and token settings.
type Config struct {
	OwnerEmail        string        `env:"OWNER_EMAIL"`
	OwnerPasswordHash string        `env:"OWNER_PASSWORD_HASH"`
	JWTSecret         string        `env:"JWT_SECRET"`
	TokenTTL          time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
}

// Service verifies owner credentials and issues access tokens.
type Service struct {
	cfg    Config
	tokens *jwt.Service
}

// NewService validates the token configuration and builds the service.
func NewService(cfg Config) (*Service, error) {
	tokens, err := jwt.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &Service{cfg: cfg, tokens: tokens}, nil
}

// Tokens exposes the token verifier for the authentication middleware.
func (s *Service) Tokens() *jwt.Service {
	return s.tokens
}

// Login checks the credentials and returns a signed access token.
// Credential mismatches are indistinguishable from each other.
func (s *Service) Login(_ context.Context, email, password string) (string, error) {
	if s.cfg.OwnerEmail == "" || s.cfg.OwnerPasswordHash == "" {
		return "", ErrNotConfigured
	}

	if !strings.EqualFold(strings.TrimSpace(email), s.cfg.OwnerEmail) {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.OwnerPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(s.cfg.OwnerEmail)
	if err != nil {
		return "", err
	}
	return token, nil
}
