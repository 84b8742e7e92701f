// Package identity defines the client used to manage users in the hosted
// identity provider. Every member row is keyed by the ID of its identity
// user, so signup creates the user first and removes it again when the row
// cannot be written.
package identity

import (
	"context"

	"github.com/google/uuid"
)

// User is an identity provider account.
type User struct {
	ID    uuid.UUID
	Email string
}

// CreateUserReq describes a user created through the admin API.
type CreateUserReq struct {
	Email    string
	Password string
	// Metadata is stored as the user's metadata (name, user type).
	Metadata map[string]any
	// EmailConfirm marks the email as confirmed so the user can sign in
	// without a verification round trip.
	EmailConfirm bool
}

// Client manages identity users with admin privileges.
//
//go:generate mockgen -package mockidentity -source=interface.go -destination=mock/mockidentity.go *
type Client interface {
	// CreateUser creates a user. An email that is already registered yields
	// serrors.ErrConflict; any other rejection yields serrors.ErrBadRequest
	// carrying the provider's message.
	CreateUser(ctx context.Context, req CreateUserReq) (User, error)
	// UserByEmail looks a user up by email and returns nil when none exists.
	UserByEmail(ctx context.Context, email string) (*User, error)
	// DeleteUser removes a user. A missing user yields serrors.ErrNotFound.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
