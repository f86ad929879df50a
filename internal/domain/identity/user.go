package identity

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/saasnotes/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents the role a user holds within its tenant
type Role string

const (
	RoleAdmin  Role = "admin"  // Can manage the tenant, including upgrades
	RoleMember Role = "member" // Can work with notes only
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a user account. Every user belongs to exactly one tenant;
// the tenant reference is fixed at creation time.
type User struct {
	shared.TenantEntity
	Email        string
	PasswordHash string
	Role         Role
}

// NewUser creates a new user with a bcrypt-hashed password
func NewUser(tenantID uuid.UUID, email, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// VerifyPassword reports whether the provided password matches the stored
// hash. bcrypt's comparison is constant-time; the plaintext is never kept.
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func validateRole(role Role) error {
	switch role {
	case RoleAdmin, RoleMember:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROLE", "Role must be admin or member")
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
