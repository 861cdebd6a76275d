package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the id.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id in its canonical textual form.
func (id UserID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText decodes an id from its textual form.
func (id *UserID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b) //nolint: wrapcheck
}

// ParseUserID parses a textual user id.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err //nolint: wrapcheck
	}

	return UserID(id), nil
}

// Role is an identity attribute granted by the identity provider.
type Role string

const (
	// RoleElevated grants modification rights over profiles owned by others.
	RoleElevated Role = "elevated"
	// RoleAdmin grants deletion rights over any profile.
	RoleAdmin Role = "admin"
)

// Identity is the authenticated caller as asserted by the identity provider.
// The directory never owns identities; it only mirrors Name and Email so the
// listing can join them.
type Identity struct {
	ID    UserID
	Name  string
	Email string
	Roles []Role
}

// IsZero reports whether the identity is unset, i.e. the caller is anonymous.
func (i Identity) IsZero() bool { return uuid.UUID(i.ID) == uuid.Nil }

// HasRole reports whether the identity holds any of the given roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if slices.Contains(i.Roles, r) {
			return true
		}
	}

	return false
}

// User is the stored mirror of an external identity.
type User struct {
	ID        UserID    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
