package impl

import (
	"context"
	"log/slog"

	"homeplate/config"
	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	products repository.ProductRepository
	cfg      *config.Config
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	products repository.ProductRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		products: products,
		cfg:      cfg,
		logger:   logger,
	}
}

// ListProducts returns every non-deleted product.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.products.FindAllListed(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// AddProduct creates a catalog entry and returns it with its id.
func (srv *catalogService) AddProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		ImageURL:    srv.imageOrDefault(input.ImageURL),
		Unit:        input.Unit,
		Quantity:    input.Quantity,
		Description: input.Description,
		Price:       input.Price,
		Status:      entity.ProductStatus(input.Status),
		FoodType:    input.FoodType,
	}
	if product.Status == "" {
		product.Status = entity.ProductAvailable
	}

	if err := srv.products.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Added product", "id", product.ID, "name", product.Name)

	return product, nil
}

// UpdateProduct overwrites the product form fields.
func (srv *catalogService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	upd := repository.ProductUpdate{
		Name:        &input.Name,
		Unit:        &input.Unit,
		Quantity:    &input.Quantity,
		Description: &input.Description,
		Price:       &input.Price,
		FoodType:    &input.FoodType,
	}
	if input.ImageURL != "" {
		upd.ImageURL = &input.ImageURL
	}
	if input.Status != "" {
		status := entity.ProductStatus(input.Status)
		upd.Status = &status
	}

	product, err := srv.products.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "no such product")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// RemoveProduct soft-deletes the product.
func (srv *catalogService) RemoveProduct(ctx context.Context, id int64) error {
	if err := srv.products.MarkDeleted(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "no such product")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("Removed product", "id", id)

	return nil
}

func (srv *catalogService) imageOrDefault(url string) string {
	if url != "" {
		return url
	}

	return srv.cfg.Defaults.ProductImageURL
}
