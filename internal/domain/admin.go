package domain

import (
	"context"
	"time"
)

// Admin grants admin capability to an email address by existing. Emails are
// stored lowercased and trimmed; every roster lookup normalizes the same way
// so Foo@x.com and foo@x.com are the same admin.
// swagger:model Admin
type Admin struct {
	Email   string    `json:"email"`
	AddedBy string    `json:"added_by"`
	AddedAt time.Time `json:"added_at"`
}

// AdminRepository defines the interface for the admin roster.
type AdminRepository interface {
	// Exists reports whether an admin record exists for the (normalized) email.
	Exists(ctx context.Context, email string) (bool, error)
	// Create adds an admin; ErrAlreadyAdmin when the email is already on the roster.
	Create(ctx context.Context, admin *Admin) error
	// Delete removes an admin; ErrNotAdmin when the email is not on the roster.
	Delete(ctx context.Context, email string) error
	// List returns all admins ordered by added_at ascending.
	List(ctx context.Context) ([]*Admin, error)
}
