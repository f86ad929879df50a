package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/notes"
	"github.com/saasnotes/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

func freeCaller() *identity.CallerContext {
	return &identity.CallerContext{
		UserID:       uuid.New(),
		TenantID:     uuid.New(),
		Subscription: identity.SubscriptionFree,
	}
}

func TestQuotaService_CheckCanCreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("free tenant below the limit is admitted", func(t *testing.T) {
		repo := new(MockNoteRepository)
		svc := NewQuotaService(repo)

		caller := freeCaller()
		repo.On("CountByTenant", ctx, caller.TenantID).Return(int64(identity.FreeNoteLimit-1), nil)

		assert.NoError(t, svc.CheckCanCreateNote(ctx, caller))
	})

	t.Run("free tenant at the limit is rejected", func(t *testing.T) {
		repo := new(MockNoteRepository)
		svc := NewQuotaService(repo)

		caller := freeCaller()
		repo.On("CountByTenant", ctx, caller.TenantID).Return(int64(identity.FreeNoteLimit), nil)

		err := svc.CheckCanCreateNote(ctx, caller)
		assert.ErrorIs(t, err, shared.ErrQuotaExceeded)
	})

	t.Run("pro tenant skips the count entirely", func(t *testing.T) {
		repo := new(MockNoteRepository)
		svc := NewQuotaService(repo)

		caller := freeCaller()
		caller.Subscription = identity.SubscriptionPro

		assert.NoError(t, svc.CheckCanCreateNote(ctx, caller))
		repo.AssertNotCalled(t, "CountByTenant")
	})
}
