package notes

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saasnotes/backend/internal/domain/shared"
)

// Note represents a single note. Notes belong to the tenant of the user who
// created them; both references are fixed at creation time.
type Note struct {
	shared.TenantEntity
	UserID  uuid.UUID
	Title   string
	Content string
}

// NewNote creates a new note owned by the given tenant and author
func NewNote(tenantID, userID uuid.UUID, title, content string) (*Note, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	return &Note{
		TenantEntity: shared.NewTenantEntity(tenantID),
		UserID:       userID,
		Title:        title,
		Content:      content,
	}, nil
}

// UpdateContent replaces the note's title and content. Tenant and author
// never change.
func (n *Note) UpdateContent(title, content string) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}

	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now()
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title is required")
	}
	if len(title) > 500 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 500 characters")
	}
	return nil
}
