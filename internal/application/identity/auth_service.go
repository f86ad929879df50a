package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/shared"
	"github.com/saasnotes/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// LoginInput carries the credentials presented at login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the signed session token and the resolved caller
type LoginResult struct {
	Token  string
	Caller *identity.CallerContext
}

// AuthService implements login, logout, and per-request caller resolution
type AuthService struct {
	users     identity.UserRepository
	tenants   identity.TenantRepository
	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users identity.UserRepository,
	tenants identity.TenantRepository,
	jwt *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tenants:   tenants,
		jwt:       jwt,
		blacklist: blacklist,
		logger:    logger,
	}
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password both come back as ErrInvalidCredentials so a
// caller cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Login failed", zap.String("email", user.Email))
		return nil, shared.ErrInvalidCredentials
	}

	tenant, err := s.tenants.FindByID(ctx, user.TenantID)
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login successful",
		zap.String("user_id", user.ID.String()),
		zap.String("tenant_id", tenant.ID.String()),
	)

	return &LoginResult{
		Token:  token,
		Caller: identity.NewCallerContext(user, tenant),
	}, nil
}

// ResolveCaller rebuilds the caller context from storage for the given user
// ID. Returns ErrUnauthorized if the user no longer exists.
func (s *AuthService) ResolveCaller(ctx context.Context, userID uuid.UUID) (*identity.CallerContext, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	tenant, err := s.tenants.FindByID(ctx, user.TenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	return identity.NewCallerContext(user, tenant), nil
}

// Logout revokes the session token for its remaining lifetime. A blacklist
// failure is logged but not surfaced; the client clears its cookie either way.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) {
	if claims == nil || claims.ID == "" {
		return
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Warn("Failed to revoke token on logout",
			zap.String("jti", claims.ID),
			zap.Error(err),
		)
	}
}
