package dto

import (
	"time"

	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/notes"
)

// TenantResponse is the wire shape of a tenant
type TenantResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Subscription string `json:"subscription"`
}

// UserResponse is the wire shape of the authenticated user, tenant included
type UserResponse struct {
	ID     string         `json:"id"`
	Email  string         `json:"email"`
	Role   string         `json:"role"`
	Tenant TenantResponse `json:"tenant"`
}

// NoteResponse is the wire shape of a note
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	TenantID  string    `json:"tenantId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse is returned on successful login alongside the session cookie
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// MeResponse is returned by the current-session query
type MeResponse struct {
	User UserResponse `json:"user"`
}

// MessageResponse carries a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// UpgradeResponse is returned after a successful tenant upgrade
type UpgradeResponse struct {
	Message string         `json:"message"`
	Tenant  TenantResponse `json:"tenant"`
}

// HealthResponse reports process and database health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// NewTenantResponse converts a tenant entity to its wire shape
func NewTenantResponse(t *identity.Tenant) TenantResponse {
	return TenantResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		Slug:         t.Slug,
		Subscription: string(t.Subscription),
	}
}

// NewUserResponse builds the user wire shape from a resolved caller context
func NewUserResponse(caller *identity.CallerContext) UserResponse {
	return UserResponse{
		ID:    caller.UserID.String(),
		Email: caller.Email,
		Role:  string(caller.Role),
		Tenant: TenantResponse{
			ID:           caller.TenantID.String(),
			Name:         caller.TenantName,
			Slug:         caller.TenantSlug,
			Subscription: string(caller.Subscription),
		},
	}
}

// NewNoteResponse converts a note entity to its wire shape
func NewNoteResponse(n *notes.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Content:   n.Content,
		UserID:    n.UserID.String(),
		TenantID:  n.TenantID.String(),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// NewNoteListResponse converts a note slice, preserving order
func NewNoteListResponse(items []*notes.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NewNoteResponse(n))
	}
	return out
}
