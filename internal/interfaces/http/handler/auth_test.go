package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appidentity "github.com/saasnotes/backend/internal/application/identity"
	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/shared"
	"github.com/saasnotes/backend/internal/infrastructure/auth"
	"github.com/saasnotes/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockTenantRepository is a mock implementation of identity.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *identity.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Update(ctx context.Context, tenant *identity.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindBySlug(ctx context.Context, slug string) (*identity.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func testCookieConfig() config.CookieConfig {
	return config.CookieConfig{
		Name:     "token",
		Path:     "/",
		Secure:   true,
		SameSite: "none",
	}
}

func newAuthTestService(users *MockUserRepository, tenants *MockTenantRepository) *appidentity.AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 24 * time.Hour,
		Issuer:     "notes-backend-test",
	})
	return appidentity.NewAuthService(users, tenants, jwtService, auth.NewMemoryTokenBlacklist(), zap.NewNop())
}

func newAuthRouter(service *appidentity.AuthService, caller *identity.CallerContext) *gin.Engine {
	handler := NewAuthHandler(service, testCookieConfig(), 24*time.Hour, nil, zap.NewNop())

	router := gin.New()
	api := router.Group("/api")
	if caller != nil {
		api.Use(withCaller(caller))
	}
	handler.RegisterRoutes(api)
	return router
}

func loginFixtures(t *testing.T) (*identity.Tenant, *identity.User) {
	tenant, err := identity.NewTenant("Acme Corp", "acme")
	require.NoError(t, err)
	user, err := identity.NewUser(tenant.ID, "admin@acme.test", "password1", identity.RoleAdmin)
	require.NoError(t, err)
	return tenant, user
}

func postLogin(router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets the session cookie and returns the user", func(t *testing.T) {
		users := new(MockUserRepository)
		tenants := new(MockTenantRepository)
		tenant, user := loginFixtures(t)
		users.On("FindByEmail", mock.Anything, "admin@acme.test").Return(user, nil)
		tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)

		router := newAuthRouter(newAuthTestService(users, tenants), nil)
		rec := postLogin(router, "admin@acme.test", "password1")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp["message"])

		userBody, ok := resp["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "admin@acme.test", userBody["email"])
		assert.Equal(t, "admin", userBody["role"])

		tenantBody, ok := userBody["tenant"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "acme", tenantBody["slug"])
		assert.Equal(t, "free", tenantBody["subscription"])

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
		assert.Equal(t, int((24 * time.Hour).Seconds()), cookies[0].MaxAge)
	})

	t.Run("unknown email and wrong password get the same 401", func(t *testing.T) {
		users := new(MockUserRepository)
		tenants := new(MockTenantRepository)
		_, user := loginFixtures(t)
		users.On("FindByEmail", mock.Anything, "admin@acme.test").Return(user, nil)
		users.On("FindByEmail", mock.Anything, "ghost@acme.test").Return(nil, shared.ErrNotFound)

		router := newAuthRouter(newAuthTestService(users, tenants), nil)

		for _, tc := range []struct{ email, password string }{
			{"ghost@acme.test", "password1"},
			{"admin@acme.test", "wrongpass1"},
		} {
			rec := postLogin(router, tc.email, tc.password)
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Invalid credentials", resp["error"])
			assert.NotContains(t, resp, "code")
		}
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		router := newAuthRouter(newAuthTestService(new(MockUserRepository), new(MockTenantRepository)), nil)
		rec := postLogin(router, "admin@acme.test", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	assertLoggedOut := func(t *testing.T, rec *httptest.ResponseRecorder) {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Logged out successfully")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge, "cookie is expired")
	}

	t.Run("with an active session", func(t *testing.T) {
		users := new(MockUserRepository)
		tenants := new(MockTenantRepository)
		router := newAuthRouter(newAuthTestService(users, tenants), freeTestCaller())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assertLoggedOut(t, rec)
	})

	t.Run("without a session the cookie is still cleared", func(t *testing.T) {
		users := new(MockUserRepository)
		tenants := new(MockTenantRepository)
		router := newAuthRouter(newAuthTestService(users, tenants), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assertLoggedOut(t, rec)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	caller := freeTestCaller()
	router := newAuthRouter(newAuthTestService(new(MockUserRepository), new(MockTenantRepository)), caller)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	userBody, ok := resp["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, caller.Email, userBody["email"])
}
