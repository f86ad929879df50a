package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appnotes "github.com/saasnotes/backend/internal/application/notes"
	"github.com/saasnotes/backend/internal/application/billing"
	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/notes"
	"github.com/saasnotes/backend/internal/domain/shared"
	"github.com/saasnotes/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// MockNoteRepository is a mock implementation of notes.NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *notes.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*notes.Note, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notes.Note), args.Error(1)
}

func (m *MockNoteRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*notes.Note, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notes.Note), args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *notes.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockNoteRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func freeTestCaller() *identity.CallerContext {
	return &identity.CallerContext{
		UserID:       uuid.New(),
		Email:        "member@acme.test",
		Role:         identity.RoleMember,
		TenantID:     uuid.New(),
		TenantName:   "Acme Corp",
		TenantSlug:   "acme",
		Subscription: identity.SubscriptionFree,
	}
}

// withCaller injects an authenticated caller, standing in for the auth
// middleware
func withCaller(caller *identity.CallerContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CallerContextKey, caller)
		c.Next()
	}
}

func newNoteRouter(repo *MockNoteRepository, caller *identity.CallerContext) *gin.Engine {
	service := appnotes.NewNoteService(repo, billing.NewQuotaService(repo), zap.NewNop())
	handler := NewNoteHandler(service, zap.NewNop())

	router := gin.New()
	api := router.Group("/api")
	api.Use(withCaller(caller))
	handler.RegisterRoutes(api)
	return router
}

func TestNoteHandler_Create(t *testing.T) {
	t.Run("creates a note and returns 201", func(t *testing.T) {
		repo := new(MockNoteRepository)
		caller := freeTestCaller()
		router := newNoteRouter(repo, caller)

		repo.On("CountByTenant", mock.Anything, caller.TenantID).Return(int64(0), nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*notes.Note")).Return(nil)

		body, _ := json.Marshal(map[string]string{"title": "Standup", "content": "agenda"})
		req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Standup", resp["title"])
		assert.Equal(t, caller.TenantID.String(), resp["tenantId"])
		assert.Equal(t, caller.UserID.String(), resp["userId"])
	})

	t.Run("quota denial returns 403 with a stable code", func(t *testing.T) {
		repo := new(MockNoteRepository)
		caller := freeTestCaller()
		router := newNoteRouter(repo, caller)

		repo.On("CountByTenant", mock.Anything, caller.TenantID).Return(int64(identity.FreeNoteLimit), nil)

		body, _ := json.Marshal(map[string]string{"title": "One more", "content": "body"})
		req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Note limit reached. Upgrade to Pro to create more notes.", resp["error"])
		assert.Equal(t, "SUBSCRIPTION_LIMIT_REACHED", resp["code"])
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		repo := new(MockNoteRepository)
		router := newNoteRouter(repo, freeTestCaller())

		body, _ := json.Marshal(map[string]string{"title": "No content"})
		req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNoteHandler_Get(t *testing.T) {
	t.Run("foreign or missing notes are both 404", func(t *testing.T) {
		repo := new(MockNoteRepository)
		caller := freeTestCaller()
		router := newNoteRouter(repo, caller)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, caller.TenantID, id).Return(nil, shared.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/notes/"+id.String(), nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Note not found")
	})

	t.Run("malformed id gets the same 404", func(t *testing.T) {
		repo := new(MockNoteRepository)
		router := newNoteRouter(repo, freeTestCaller())

		req := httptest.NewRequest(http.MethodGet, "/api/notes/not-a-uuid", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Note not found")
		repo.AssertNotCalled(t, "FindByID")
	})
}

func TestNoteHandler_List(t *testing.T) {
	repo := new(MockNoteRepository)
	caller := freeTestCaller()
	router := newNoteRouter(repo, caller)

	note, err := notes.NewNote(caller.TenantID, caller.UserID, "Only note", "body")
	require.NoError(t, err)
	repo.On("ListByTenant", mock.Anything, caller.TenantID).Return([]*notes.Note{note}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Only note", resp[0]["title"])
}

func TestNoteHandler_Delete(t *testing.T) {
	repo := new(MockNoteRepository)
	caller := freeTestCaller()
	router := newNoteRouter(repo, caller)

	id := uuid.New()
	repo.On("Delete", mock.Anything, caller.TenantID, id).Return(shared.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/notes/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note not found")
}
