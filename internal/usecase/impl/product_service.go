package impl

import (
	"context"
	"log/slog"

	"emall/internal/domain/entity"
	domainerrors "emall/internal/domain/errors"
	"emall/internal/domain/repository"
	"emall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateProduct adds a product to the catalog of an existing shop.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.logger.Info("Creating product", "name", input.Name, "shopID", input.ShopID)

	product := &entity.Product{
		Name:        input.Name,
		Image:       input.Image,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		ShopID:      input.ShopID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. The owning shop must exist. Checked in the same transaction as
		// the insert so a concurrent shop delete cannot slip in between.
		if _, err := repoFactory.ShopRepo().FindByID(ctx, input.ShopID); err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		// 2. Insert.
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProduct retrieves a product by its ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	srv.logger.Debug("Getting product", "productID", id)

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundProduct, err := repoFactory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = foundProduct

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// GetProductByName retrieves the first product matching a name.
func (srv *productService) GetProductByName(ctx context.Context, name string) (*entity.Product, error) {
	srv.logger.Debug("Getting product by name", "name", name)

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundProduct, err := repoFactory.ProductRepo().FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product by name")
		}
		product = foundProduct

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get product by name")
	}

	return product, nil
}

// ListProducts retrieves the whole catalog.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	srv.logger.Debug("Listing products")

	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundProducts, err := repoFactory.ProductRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = foundProducts

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListShopProducts retrieves all products owned by an existing shop.
func (srv *productService) ListShopProducts(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error) {
	srv.logger.Debug("Listing shop products", "shopID", shopID)

	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ShopRepo().FindByID(ctx, shopID); err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		foundProducts, err := repoFactory.ProductRepo().FindByShop(ctx, shopID)
		if err != nil {
			return errors.Wrap(err, "failed to list shop products")
		}
		products = foundProducts

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop products")
	}

	return products, nil
}

// UpdateProduct applies a partial update to a product. A nil field leaves the
// current value unchanged; zero is a valid price and quantity.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.logger.Info("Updating product", "productID", id)

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		// 1. Find the product.
		foundProduct, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. Apply the supplied fields.
		if input.Name != nil {
			foundProduct.Name = *input.Name
		}
		if input.Image != nil {
			foundProduct.Image = *input.Image
		}
		if input.Description != nil {
			foundProduct.Description = *input.Description
		}
		if input.Price != nil {
			foundProduct.Price = *input.Price
		}
		if input.Quantity != nil {
			foundProduct.Quantity = *input.Quantity
		}

		// 3. Save.
		if err := productRepo.Update(ctx, foundProduct); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = foundProduct

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product unless sale details still reference it.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting product", "productID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		// 1. Find the product.
		if _, err := productRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. Deleting a product referenced by sale lines would dangle those
		// lines' product ids.
		count, err := repoFactory.SaleDetailRepo().CountByProduct(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count product sale details")
		}
		if count > 0 {
			return errors.Wrap(domainerrors.ErrHasDependents, "product is referenced by sale details")
		}

		// 3. Delete.
		if err := productRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
