// Package repository defines the interfaces for the persistence layer.
//
// The store is queried through named methods, one per access pattern, rather
// than caller-supplied predicates; the fixed set below covers every join the
// aggregation layer performs.
package repository

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/errors"
)

// ErrAdminNotFound is returned when no admin matches the username.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository persists back-office accounts.
type AdminRepository interface {
	// FindByUsername retrieves an admin by username.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// Create persists a new admin and fills in the generated id and created_at.
	Create(ctx context.Context, admin *entity.Admin) error
}
