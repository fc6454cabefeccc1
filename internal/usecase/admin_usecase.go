// Package usecase defines the application's use case interfaces and their
// input/output DTOs. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"homeplate/internal/domain/entity"
)

// AdminLoginInput is the back-office login request.
type AdminLoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminUsecase covers back-office account management.
type AdminUsecase interface {
	// Login verifies admin credentials and returns the account.
	Login(ctx context.Context, input *AdminLoginInput) (*entity.Admin, error)

	// EnsureSeeded creates the configured default admin when the collection
	// has no account with that username yet. Called once at startup.
	EnsureSeeded(ctx context.Context) error
}
