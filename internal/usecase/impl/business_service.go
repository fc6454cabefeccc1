package impl

import (
	"context"
	"log/slog"

	"homeplate/config"
	"homeplate/internal/domain/entity"
	"homeplate/internal/domain/repository"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	profiles repository.BusinessRepository
	cfg      *config.Config
	logger   *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(
	profiles repository.BusinessRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		profiles: profiles,
		cfg:      cfg,
		logger:   logger,
	}
}

// CurrentProfile returns the latest snapshot, or an empty record with the
// default cart value before the first save.
func (srv *businessService) CurrentProfile(ctx context.Context) (*entity.BusinessInfo, error) {
	profile, err := srv.profiles.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessProfileNotFound) {
			return &entity.BusinessInfo{CartValue: srv.cfg.Defaults.CartValue}, nil
		}

		return nil, errors.Wrap(err, "failed to load business profile")
	}

	return profile, nil
}

// SaveProfile appends a new snapshot, carrying forward file URLs the input
// leaves empty.
func (srv *businessService) SaveProfile(ctx context.Context, input *usecase.BusinessProfileInput) (*entity.BusinessInfo, error) {
	profile := &entity.BusinessInfo{
		Name:           input.Name,
		Address:        input.Address,
		ContactNumber:  input.ContactNumber,
		DeliveryCharge: input.DeliveryCharge,
		HandlingCharge: input.HandlingCharge,
		OpenTime:       input.OpenTime,
		CloseTime:      input.CloseTime,
		BreakStart:     input.BreakStart,
		BreakEnd:       input.BreakEnd,
		WeeklyHoliday:  input.WeeklyHoliday,
		CartValue:      input.CartValue,
		ShopImageURL:   input.ShopImageURL,
		LicenceDocURL:  input.LicenceDocURL,
	}
	if profile.CartValue.IsZero() {
		profile.CartValue = srv.cfg.Defaults.CartValue
	}

	previous, err := srv.profiles.Current(ctx)
	if err == nil {
		if profile.ShopImageURL == "" {
			profile.ShopImageURL = previous.ShopImageURL
		}
		if profile.LicenceDocURL == "" {
			profile.LicenceDocURL = previous.LicenceDocURL
		}
	} else if !errors.Is(err, repository.ErrBusinessProfileNotFound) {
		return nil, errors.Wrap(err, "failed to load previous business profile")
	}

	if err := srv.profiles.Append(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save business profile")
	}

	srv.logger.Info("Saved business profile", "id", profile.ID, "name", profile.Name)

	return profile, nil
}
