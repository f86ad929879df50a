package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saasnotes/backend/internal/domain/notes"
	"github.com/saasnotes/backend/internal/domain/shared"
	"github.com/saasnotes/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormNoteRepository implements notes.NoteRepository using GORM. Every query
// carries the tenant filter; rows under another tenant behave exactly like
// missing rows.
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new note
func (r *GormNoteRepository) Create(ctx context.Context, note *notes.Note) error {
	model := models.NoteModelFromDomain(note)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a note by ID within the tenant
func (r *GormNoteRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*notes.Note, error) {
	var model models.NoteModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListByTenant returns all notes of the tenant, newest first
func (r *GormNoteRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*notes.Note, error) {
	var noteModels []*models.NoteModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&noteModels).Error; err != nil {
		return nil, err
	}

	result := make([]*notes.Note, len(noteModels))
	for i, model := range noteModels {
		result[i] = model.ToDomain()
	}
	return result, nil
}

// Update updates an existing note within the tenant. The tenant filter in
// the WHERE clause makes a cross-tenant update indistinguishable from a
// missing note.
func (r *GormNoteRepository) Update(ctx context.Context, note *notes.Note) error {
	result := r.db.WithContext(ctx).
		Model(&models.NoteModel{}).
		Where("tenant_id = ? AND id = ?", note.TenantID, note.ID).
		Updates(map[string]interface{}{
			"title":      note.Title,
			"content":    note.Content,
			"updated_at": note.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a note by ID within the tenant
func (r *GormNoteRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&models.NoteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByTenant returns the number of notes the tenant holds
func (r *GormNoteRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.NoteModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormNoteRepository implements NoteRepository
var _ notes.NoteRepository = (*GormNoteRepository)(nil)
