package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

var allowedRoles = []string{"customer", "admin", "staff"}

// User represents a registered account.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

type Role string

// NewRole validates an account role, defaulting to customer when empty.
func NewRole(value string) (Role, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Role("customer"), nil
	}
	for _, allowed := range allowedRoles {
		if allowed == trimmed {
			return Role(trimmed), nil
		}
	}
	return "", fmt.Errorf("role must be one of: %s", strings.Join(allowedRoles, ", "))
}

func (r Role) String() string {
	return string(r)
}

type Email string

// NewEmail validates and normalises an email address to lower case.
func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("email is required")
	}
	if len(trimmed) > 254 {
		return "", fmt.Errorf("email too long")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("invalid email format")
	}
	return Email(strings.ToLower(trimmed)), nil
}

func (e Email) String() string {
	return string(e)
}
