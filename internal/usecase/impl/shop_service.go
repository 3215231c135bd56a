// Package impl contains the application-specific business rules implementations.
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

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ShopUsecase {
	return &shopService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateShop registers a new shop after checking name availability.
func (srv *shopService) CreateShop(ctx context.Context, input *usecase.CreateShopInput) (*entity.Shop, error) {
	srv.logger.Info("Creating shop", "name", input.Name)

	shop := &entity.Shop{
		Name:        input.Name,
		Logo:        input.Logo,
		Description: input.Description,
		Phone:       input.Phone,
		Address:     input.Address,
		Email:       input.Email,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		// 1. Reject a taken name before touching the row.
		_, err := shopRepo.FindByName(ctx, input.Name)
		if err == nil {
			return errors.Wrap(domainerrors.ErrShopAlreadyExists, "shop name already registered")
		}
		if !errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(err, "failed to check shop name availability")
		}

		// 2. Insert. The store's unique constraints cover the remaining
		// unique columns (logo, phone, address, email).
		if err := shopRepo.Create(ctx, shop); err != nil {
			if errors.Is(err, repository.ErrDuplicateShop) {
				return errors.Wrap(domainerrors.ErrShopAlreadyExists, "shop unique field already taken")
			}

			return errors.Wrap(err, "failed to create shop")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create shop")
	}

	return shop, nil
}

// GetShop retrieves a shop by its ID.
func (srv *shopService) GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	srv.logger.Debug("Getting shop", "shopID", id)

	var shop *entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundShop, err := repoFactory.ShopRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}
		shop = foundShop

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get shop")
	}

	return shop, nil
}

// ListShops retrieves all registered shops.
func (srv *shopService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	srv.logger.Debug("Listing shops")

	var shops []*entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundShops, err := repoFactory.ShopRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list shops")
		}
		shops = foundShops

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// RenameShop changes the name of an existing shop.
func (srv *shopService) RenameShop(ctx context.Context, id uuid.UUID, newName string) (*entity.Shop, error) {
	srv.logger.Info("Renaming shop", "shopID", id, "newName", newName)

	var shop *entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		// 1. Find the shop.
		foundShop, err := shopRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		// 2. Apply the new name. The unique constraint on name rejects a
		// rename onto a taken name.
		foundShop.Name = newName

		if err := shopRepo.Update(ctx, foundShop); err != nil {
			if errors.Is(err, repository.ErrDuplicateShop) {
				return errors.Wrap(domainerrors.ErrShopAlreadyExists, "shop name already registered")
			}

			return errors.Wrap(err, "failed to rename shop")
		}
		shop = foundShop

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to rename shop")
	}

	return shop, nil
}

// DeleteShop removes a shop unless it still owns products.
func (srv *shopService) DeleteShop(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting shop", "shopID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		// 1. Find the shop.
		if _, err := shopRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		// 2. A shop that still owns products cannot be removed; cascading
		// would transitively orphan sale lines.
		count, err := repoFactory.ProductRepo().CountByShop(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count shop products")
		}
		if count > 0 {
			return errors.Wrap(domainerrors.ErrHasDependents, "shop still owns products")
		}

		// 3. Delete.
		if err := shopRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete shop")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete shop")
	}

	return nil
}
