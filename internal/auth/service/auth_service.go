package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/empreweb/empreweb-backend/internal/auth"
	"github.com/empreweb/empreweb-backend/internal/auth/domain"
	"github.com/empreweb/empreweb-backend/internal/logging"
)

type AuthService struct {
	adminPassword string
	secret        []byte
	log           logging.Logger
}

func NewAuthService(adminPassword, jwtSecret string, log logging.Logger) *AuthService {
	return &AuthService{
		adminPassword: adminPassword,
		secret:        []byte(jwtSecret),
		log:           log.With("component", "auth"),
	}
}

// Login exchanges the shared admin password for a signed token.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if s.adminPassword == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		s.log.Warn(ctx, "admin login rejected")
		return "", domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.log.Info(ctx, "admin login")
	return token, nil
}

func (s *AuthService) Verify(token string) error {
	return auth.VerifyAdminToken(token, s.secret)
}
