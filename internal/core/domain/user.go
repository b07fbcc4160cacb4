package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the coarse privilege tier carried in the session token.
type Role string

const (
	RoleRegular Role = "regular"
	RoleAdmin   Role = "admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("email already in use")
	ErrInvalidToken       = errors.New("invalid token")
)

// ParseRole accepts the role names case-insensitively ("ADMIN", "admin").
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleRegular:
		return RoleRegular, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// CanonicalEmail trims the address and, when foldCase is set, lowercases it
// so that uniqueness and lookups ignore case.
func CanonicalEmail(email string, foldCase bool) string {
	e := strings.TrimSpace(email)
	if foldCase {
		e = strings.ToLower(e)
	}
	return e
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// User is the sanitized view of an account. It has no credential field, so
// nothing built from it can leak the password hash.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      Role       `json:"role"`
	Interests []Interest `json:"interests,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Credential is the authentication record. Only the credential store
// produces it and only the auth service consumes it.
type Credential struct {
	User         User
	PasswordHash string
}
