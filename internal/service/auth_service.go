package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/unimeet/unimeet-api/internal/auth"
	"github.com/unimeet/unimeet-api/internal/config"
	"github.com/unimeet/unimeet-api/internal/domain"
	"github.com/unimeet/unimeet-api/internal/repository"
	apperrors "github.com/unimeet/unimeet-api/pkg/util"
)

// LoginResult carries the authenticated profile and its bearer credential.
type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService implements the institutional-email login gate. Unknown but
// well-formed emails are provisioned as Member accounts on first login.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	domainName string
	emailRx    *regexp.Regexp
}

// NewAuthService builds the service. The email gate accepts exactly 12
// digits followed by @ and the configured domain, case-insensitively.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	domainName := strings.ToLower(strings.TrimSpace(cfg.AllowedEmailDomain))
	pattern := `(?i)^\d{12}@` + regexp.QuoteMeta(domainName) + `$`
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg),
		bcryptCost: cfg.BcryptCost,
		domainName: domainName,
		emailRx:    regexp.MustCompile(pattern),
	}
}

// Login authenticates a student, creating the account on first sight of a
// well-formed email. Creating that row is the only side effect.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if email == "" {
		return nil, apperrors.NewValidationError("E-posta zorunludur.")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("Şifre zorunludur.")
	}
	if !s.emailRx.MatchString(email) {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"E-posta 12 haneli öğrenci no + @%s formatında olmalı. Örn: 202203011029@%s",
			s.domainName, s.domainName))
	}

	user, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == pgx.ErrNoRows:
		user, err = s.provision(ctx, email, password)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
	case err != nil:
		return nil, apperrors.MapError(err)
	default:
		if !user.IsActive {
			return nil, apperrors.NewForbidden("Hesap pasif.")
		}
		if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
			return nil, apperrors.NewUnauthorized("Şifre hatalı.")
		}
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) provision(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		FullName:     strings.SplitN(email, "@", 2)[0],
		PasswordHash: hash,
		Role:         domain.RoleMember,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
