package dto

// LoginRequest is the credential pair presented to POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// NoteRequest carries the client-editable fields for note create and update
type NoteRequest struct {
	Title   string `json:"title" binding:"required,notblank,max=500"`
	Content string `json:"content" binding:"required"`
}
