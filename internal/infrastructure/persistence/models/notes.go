package models

import (
	"github.com/google/uuid"
	"github.com/saasnotes/backend/internal/domain/notes"
)

// NoteModel is the persistence model for the Note domain entity.
type NoteModel struct {
	TenantModelBase
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title   string    `gorm:"type:varchar(500);not null"`
	Content string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (NoteModel) TableName() string {
	return "notes"
}

// ToDomain converts the persistence model to a domain Note entity.
func (m *NoteModel) ToDomain() *notes.Note {
	return &notes.Note{
		TenantEntity: m.ToDomainTenantEntity(),
		UserID:       m.UserID,
		Title:        m.Title,
		Content:      m.Content,
	}
}

// FromDomain populates the persistence model from a domain Note entity.
func (m *NoteModel) FromDomain(n *notes.Note) {
	m.FromDomainTenantEntity(n.TenantEntity)
	m.UserID = n.UserID
	m.Title = n.Title
	m.Content = n.Content
}

// NoteModelFromDomain creates a new persistence model from a domain Note entity.
func NoteModelFromDomain(n *notes.Note) *NoteModel {
	m := &NoteModel{}
	m.FromDomain(n)
	return m
}
