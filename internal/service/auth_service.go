package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Antonk123/latest-it-ticketing/internal/auth"
	"github.com/Antonk123/latest-it-ticketing/internal/config"
	"github.com/Antonk123/latest-it-ticketing/internal/repository"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// AuthService issues bearer credentials for staff accounts.
type AuthService struct {
	staff      repository.StaffRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// LoginResult carries a signed token and its expiry.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, staff repository.StaffRepository) *AuthService {
	return &AuthService{
		staff:      staff,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login verifies credentials and issues a token. Unknown accounts and bad
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	staff, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	if !auth.CheckPassword(staff.PasswordHash, password) {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	token, expiresAt, err := s.tokens.GenerateToken(staff.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// ChangePassword replaces the caller's password after verifying the
// current one.
func (s *AuthService) ChangePassword(ctx context.Context, staffID, current, next string) error {
	staff, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("staff account not found")
		}
		return apperrors.NewPersistenceError(err)
	}
	if !auth.CheckPassword(staff.PasswordHash, current) {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	if len(next) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters", nil)
	}
	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	staff.PasswordHash = hash
	if err := s.staff.Update(ctx, staff); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}
