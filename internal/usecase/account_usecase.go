package usecase

import (
	"context"

	"homeplate/internal/domain/entity"
)

// UserLoginInput identifies a customer by mobile number; unknown numbers are
// registered on the fly.
type UserLoginInput struct {
	Mobile string `json:"mobile" validate:"required"`
}

// UserLoginOutput reports the session user and whether the account was just
// created.
type UserLoginOutput struct {
	User  *entity.User `json:"user"`
	IsNew bool         `json:"is_new"`
}

// ProfileUpdateInput carries the editable profile fields. All three are
// always written; the profile form submits the full set.
type ProfileUpdateInput struct {
	Name      string `json:"name"`
	AltMobile string `json:"alt_mobile"`
	Address   string `json:"address"`
}

// AccountUsecase covers customer identity and profile management.
type AccountUsecase interface {
	// Login finds or creates the customer for the mobile number.
	Login(ctx context.Context, input *UserLoginInput) (*UserLoginOutput, error)

	// Profile returns the customer's record.
	Profile(ctx context.Context, mobile string) (*entity.User, error)

	// UpdateProfile overwrites the editable profile fields.
	UpdateProfile(ctx context.Context, mobile string, input *ProfileUpdateInput) (*entity.User, error)

	// Erase hard-deletes the customer and cascades to their orders, order
	// items and payments.
	Erase(ctx context.Context, mobile string) error
}
