package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/infrastructure/auth"
	"github.com/saasnotes/backend/internal/infrastructure/logger"
	"github.com/saasnotes/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware
const (
	CallerContextKey = "caller_context"
	JWTClaimsKey     = "jwt_claims"
	AuthHeaderKey    = "Authorization"
	BearerPrefix     = "Bearer "
)

// CallerResolver maps a verified user ID to a full caller context.
// Implemented by the identity application service.
type CallerResolver interface {
	ResolveCaller(ctx context.Context, userID uuid.UUID) (*identity.CallerContext, error)
}

// AuthConfig holds configuration for the authentication middleware
type AuthConfig struct {
	JWTService *auth.JWTService
	// Blacklist is consulted for revoked JTIs. An outage fails open so an
	// unreachable Redis cannot take sessions down with it.
	Blacklist auth.TokenBlacklist
	// Resolver resolves the caller context fresh from storage
	Resolver CallerResolver
	// CookieName is the session cookie carrying the token
	CookieName string
	// SkipPaths are exact paths that don't require authentication
	SkipPaths []string
	// OptionalPaths are exact paths where authentication is attempted but a
	// missing or invalid token does not block the request. Logout lives
	// here: a caller with an expired session must still be able to clear
	// its cookie, while a valid session gets its token revoked.
	OptionalPaths []string
	Logger        *zap.Logger
}

// Auth authenticates each request: it verifies the session token, checks
// revocation, and resolves the caller context from storage. The resolved
// context is the only source of tenant scope downstream.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}
		optional := false
		for _, p := range cfg.OptionalPaths {
			if path == p {
				optional = true
				break
			}
		}

		caller, claims, failure := resolveSession(c, cfg)
		if failure != "" {
			if optional {
				c.Next()
				return
			}
			abortUnauthorized(c, failure)
			return
		}

		c.Set(CallerContextKey, caller)
		c.Set(JWTClaimsKey, claims)

		// Downstream logs for this request carry the caller's identity.
		reqLogger := logger.GetGinLogger(c)
		ctx := c.Request.Context()
		ctx, reqLogger = logger.WithUserID(ctx, reqLogger, caller.UserID.String())
		ctx, reqLogger = logger.WithTenantID(ctx, reqLogger, caller.TenantID.String())
		c.Set("logger", reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// resolveSession validates the session token and resolves its caller. A
// non-empty failure message means the request carries no usable session.
func resolveSession(c *gin.Context, cfg AuthConfig) (*identity.CallerContext, *auth.Claims, string) {
	token := extractToken(c, cfg.CookieName)
	if token == "" {
		return nil, nil, "Authentication required"
	}

	claims, err := cfg.JWTService.ValidateToken(token)
	if err != nil {
		return nil, nil, "Invalid or expired token"
	}

	if cfg.Blacklist != nil && claims.ID != "" {
		revoked, err := cfg.Blacklist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Token blacklist check failed",
					zap.String("jti", claims.ID),
					zap.Error(err))
			}
		} else if revoked {
			return nil, nil, "Invalid or expired token"
		}
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, nil, "Invalid or expired token"
	}

	caller, err := cfg.Resolver.ResolveCaller(c.Request.Context(), userID)
	if err != nil {
		return nil, nil, "Invalid or expired token"
	}

	return caller, claims, ""
}

// extractToken reads the session token from the cookie, falling back to a
// Bearer authorization header for non-browser clients.
func extractToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader(AuthHeaderKey)
	if strings.HasPrefix(header, BearerPrefix) {
		return strings.TrimPrefix(header, BearerPrefix)
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
}

// GetCaller returns the caller context set by the auth middleware
func GetCaller(c *gin.Context) (*identity.CallerContext, bool) {
	value, exists := c.Get(CallerContextKey)
	if !exists {
		return nil, false
	}
	caller, ok := value.(*identity.CallerContext)
	return caller, ok
}

// GetClaims returns the verified token claims set by the auth middleware
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(JWTClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
