package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	config "github.com/ankitdas13/contentdesk/configs"
	"github.com/ankitdas13/contentdesk/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const sessionDuration = 72 * time.Hour

type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}

type authService struct {
	cfg config.Config
}

func NewAuthService(cfg config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login checks the admin password and returns a signed session token.
func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if s.cfg.AdminPassword == "" {
		err := errors.New("admin password is not configured")
		slog.Info(err.Error())
		return "", err
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateToken(s.cfg.SecretKey, "admin", sessionDuration)
}
