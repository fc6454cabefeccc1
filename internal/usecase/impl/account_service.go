package impl

import (
	"context"
	"log/slog"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	users  repository.UserRepository
	orders repository.OrderRepository
	logger *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	users repository.UserRepository,
	orders repository.OrderRepository,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		users:  users,
		orders: orders,
		logger: logger,
	}
}

// Login finds or creates the customer for the mobile number.
func (srv *accountService) Login(ctx context.Context, input *usecase.UserLoginInput) (*usecase.UserLoginOutput, error) {
	user, err := srv.users.FindByMobile(ctx, input.Mobile)
	if err == nil {
		return &usecase.UserLoginOutput{User: user, IsNew: false}, nil
	}

	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user")
	}

	user = &entity.User{MobileNumber: input.Mobile}
	if err := srv.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.logger.Info("Registered new customer", "mobile", input.Mobile)

	return &usecase.UserLoginOutput{User: user, IsNew: true}, nil
}

// Profile returns the customer's record.
func (srv *accountService) Profile(ctx context.Context, mobile string) (*entity.User, error) {
	user, err := srv.users.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no such customer")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile overwrites the editable profile fields.
func (srv *accountService) UpdateProfile(ctx context.Context, mobile string, input *usecase.ProfileUpdateInput) (*entity.User, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "missing profile input")
	}

	user, err := srv.users.Update(ctx, mobile, repository.UserUpdate{
		Name:            &input.Name,
		AltMobileNumber: &input.AltMobile,
		Address:         &input.Address,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no such customer")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// Erase hard-deletes the customer together with their order history.
func (srv *accountService) Erase(ctx context.Context, mobile string) error {
	if _, err := srv.orders.DeleteByUser(ctx, mobile); err != nil {
		return errors.Wrap(err, "failed to delete customer orders")
	}

	removed, err := srv.users.Delete(ctx, mobile)
	if err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}
	if !removed {
		return errors.Wrap(domainerrors.ErrUserNotFound, "no such customer")
	}

	srv.logger.Info("Erased customer", "mobile", mobile)

	return nil
}
