package repository

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/errors"
)

// ErrUserNotFound is returned when no user matches the mobile number.
var ErrUserNotFound = errors.New("user not found")

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name            *string
	AltMobileNumber *string
	Address         *string
	Status          *entity.UserStatus
}

// UserRepository persists customers, keyed by mobile number.
type UserRepository interface {
	// FindByMobile retrieves a user by mobile number.
	FindByMobile(ctx context.Context, mobile string) (*entity.User, error)

	// FindAllActive returns every user whose status is not Deleted, in stored order.
	FindAllActive(ctx context.Context) ([]*entity.User, error)

	// Count returns the number of user records, soft-deleted ones included.
	Count(ctx context.Context) (int, error)

	// Create persists a new user and stamps created_at.
	Create(ctx context.Context, user *entity.User) error

	// Update applies the non-nil fields of upd to the user and returns the
	// updated record, or ErrUserNotFound without persisting anything.
	Update(ctx context.Context, mobile string, upd UserUpdate) (*entity.User, error)

	// Delete removes the user record entirely. It reports whether a record
	// was removed; cascading to orders, items and payments is the caller's
	// responsibility.
	Delete(ctx context.Context, mobile string) (bool, error)
}
