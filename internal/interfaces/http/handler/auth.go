package handler

import (
	"net/http"
	"time"

	appidentity "github.com/saasnotes/backend/internal/application/identity"
	"github.com/saasnotes/backend/internal/infrastructure/config"
	"github.com/saasnotes/backend/internal/interfaces/http/dto"
	"github.com/saasnotes/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves login, logout, and the current-session query
type AuthHandler struct {
	BaseHandler
	auth        *appidentity.AuthService
	cookie      config.CookieConfig
	tokenTTL    time.Duration
	rateLimiter *middleware.RateLimiter
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(
	authService *appidentity.AuthService,
	cookieCfg config.CookieConfig,
	tokenTTL time.Duration,
	rateLimiter *middleware.RateLimiter,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		auth:        authService,
		cookie:      cookieCfg,
		tokenTTL:    tokenTTL,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/auth")
	{
		if h.rateLimiter != nil {
			group.POST("/login", middleware.RateLimitByIP(h.rateLimiter), h.Login)
		} else {
			group.POST("/login", h.Login)
		}
		group.POST("/logout", h.Logout)
		group.GET("/me", h.Me)
	}
}

// Login verifies credentials and starts a session. The token travels in an
// HttpOnly cookie; the body carries the resolved user so the client never
// has to decode the token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Email and password are required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), appidentity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	h.OK(c, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.NewUserResponse(result.Caller),
	})
}

// Logout revokes the session token and clears the cookie. The cookie is
// cleared even when revocation fails, so the client always ends up signed
// out.
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims, ok := middleware.GetClaims(c); ok {
		h.auth.Logout(c.Request.Context(), claims)
	}

	h.clearSessionCookie(c)
	h.OK(c, dto.MessageResponse{Message: "Logged out successfully"})
}

// Me returns the freshly resolved caller for the current session
func (h *AuthHandler) Me(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}
	h.OK(c, dto.MeResponse{User: dto.NewUserResponse(caller)})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, token, int(h.tokenTTL.Seconds()), h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, "", -1, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func sameSiteMode(value string) http.SameSite {
	switch value {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteNoneMode
	}
}
