package notes

import (
	"context"

	"github.com/google/uuid"
	"github.com/saasnotes/backend/internal/application/billing"
	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/notes"
	"go.uber.org/zap"
)

// NoteInput carries the client-editable fields of a note
type NoteInput struct {
	Title   string
	Content string
}

// NoteService is the tenant-scoped gateway to notes. The tenant filter comes
// from the caller context on every operation; a note under another tenant is
// reported as not found, never as forbidden.
type NoteService struct {
	notes  notes.NoteRepository
	quota  *billing.QuotaService
	logger *zap.Logger
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo notes.NoteRepository, quota *billing.QuotaService, logger *zap.Logger) *NoteService {
	return &NoteService{
		notes:  noteRepo,
		quota:  quota,
		logger: logger,
	}
}

// Create admits a new note after the quota check passes
func (s *NoteService) Create(ctx context.Context, caller *identity.CallerContext, input NoteInput) (*notes.Note, error) {
	if err := s.quota.CheckCanCreateNote(ctx, caller); err != nil {
		return nil, err
	}

	note, err := notes.NewNote(caller.TenantID, caller.UserID, input.Title, input.Content)
	if err != nil {
		return nil, err
	}

	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	s.logger.Info("Note created",
		zap.String("note_id", note.ID.String()),
		zap.String("tenant_id", caller.TenantID.String()),
	)

	return note, nil
}

// List returns all notes of the caller's tenant, newest first
func (s *NoteService) List(ctx context.Context, caller *identity.CallerContext) ([]*notes.Note, error) {
	return s.notes.ListByTenant(ctx, caller.TenantID)
}

// Get returns a single note within the caller's tenant
func (s *NoteService) Get(ctx context.Context, caller *identity.CallerContext, id uuid.UUID) (*notes.Note, error) {
	return s.notes.FindByID(ctx, caller.TenantID, id)
}

// Update replaces a note's title and content within the caller's tenant
func (s *NoteService) Update(ctx context.Context, caller *identity.CallerContext, id uuid.UUID, input NoteInput) (*notes.Note, error) {
	note, err := s.notes.FindByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, err
	}

	if err := note.UpdateContent(input.Title, input.Content); err != nil {
		return nil, err
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes a note within the caller's tenant
func (s *NoteService) Delete(ctx context.Context, caller *identity.CallerContext, id uuid.UUID) error {
	if err := s.notes.Delete(ctx, caller.TenantID, id); err != nil {
		return err
	}

	s.logger.Info("Note deleted",
		zap.String("note_id", id.String()),
		zap.String("tenant_id", caller.TenantID.String()),
	)
	return nil
}
