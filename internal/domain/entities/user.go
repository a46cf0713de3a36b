package entities

import (
	"strings"

	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// User represents an account that can own places and write reviews. The
// password is held in memory only and never serialized.
type User struct {
	Base
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"-"`
}

// NewUser creates an empty user with a fresh identity.
func NewUser() *User {
	return &User{Base: newBase()}
}

// EntityKind returns KindUser.
func (u *User) EntityKind() Kind {
	return KindUser
}

// Validate checks required fields.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return apperrors.NewValidationError("email is required")
	}
	if strings.TrimSpace(u.FirstName) == "" {
		return apperrors.NewValidationError("first_name is required")
	}
	if strings.TrimSpace(u.LastName) == "" {
		return apperrors.NewValidationError("last_name is required")
	}
	if strings.TrimSpace(u.Password) == "" {
		return apperrors.NewValidationError("password is required")
	}
	return nil
}

// Apply merges a field map into the user. Unknown keys are ignored.
func (u *User) Apply(updates map[string]any) error {
	if v, ok := updates["email"]; ok {
		s, err := stringValue(v, "email")
		if err != nil {
			return err
		}
		u.Email = s
	}
	if v, ok := updates["first_name"]; ok {
		s, err := stringValue(v, "first_name")
		if err != nil {
			return err
		}
		u.FirstName = s
	}
	if v, ok := updates["last_name"]; ok {
		s, err := stringValue(v, "last_name")
		if err != nil {
			return err
		}
		u.LastName = s
	}
	if v, ok := updates["password"]; ok {
		s, err := stringValue(v, "password")
		if err != nil {
			return err
		}
		u.Password = s
	}
	return nil
}

// Clone returns an independent copy.
func (u *User) Clone() Entity {
	c := *u
	return &c
}
