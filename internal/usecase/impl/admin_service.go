// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"homeplate/config"
	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/domain/service"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	admins repository.AdminRepository
	hasher service.PasswordHasher
	cfg    *config.Config
	logger *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	admins repository.AdminRepository,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		admins: admins,
		hasher: hasher,
		cfg:    cfg,
		logger: logger,
	}
}

// Login verifies admin credentials and returns the account.
func (srv *adminService) Login(ctx context.Context, input *usecase.AdminLoginInput) (*entity.Admin, error) {
	admin, err := srv.admins.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	srv.logger.Info("Admin logged in", "username", admin.Username)

	return admin, nil
}

// EnsureSeeded creates the configured default admin when absent.
func (srv *adminService) EnsureSeeded(ctx context.Context) error {
	if srv.cfg.Auth == nil || srv.cfg.Auth.AdminUsername == "" {
		return errors.New("seed admin credentials are not configured")
	}
	username := srv.cfg.Auth.AdminUsername

	if _, err := srv.admins.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check for seeded admin")
	}

	hash, err := srv.hasher.Hash(srv.cfg.Auth.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash seeded admin password")
	}

	admin := &entity.Admin{
		Username:     username,
		PasswordHash: hash,
	}
	if err := srv.admins.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create seeded admin")
	}

	srv.logger.Info("Seeded default admin", "username", username)

	return nil
}
