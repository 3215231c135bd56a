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

// saleDetailService implements the SaleDetailUsecase interface.
type saleDetailService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSaleDetailService is the constructor for saleDetailService.
func NewSaleDetailService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SaleDetailUsecase {
	return &saleDetailService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateSaleDetail attaches a product to a sale with a quantity. Both foreign
// keys are validated in the same transaction as the insert, so neither target
// can be deleted between check and write.
func (srv *saleDetailService) CreateSaleDetail(ctx context.Context, input *usecase.CreateSaleDetailInput) (*entity.SaleDetail, error) {
	srv.logger.Info("Creating sale detail", "saleID", input.SaleID, "productID", input.ProductID)

	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	detail := &entity.SaleDetail{
		Quantity:  input.Quantity,
		SaleID:    input.SaleID,
		ProductID: input.ProductID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. The product must exist.
		if _, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. The sale must exist.
		if _, err := repoFactory.SaleRepo().FindByID(ctx, input.SaleID); err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found")
			}

			return errors.Wrap(err, "failed to find sale")
		}

		// 3. Insert.
		if err := repoFactory.SaleDetailRepo().Create(ctx, detail); err != nil {
			return errors.Wrap(err, "failed to create sale detail")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create sale detail")
	}

	return detail, nil
}

// ListSaleDetails retrieves every line with its sale and product resolved.
func (srv *saleDetailService) ListSaleDetails(ctx context.Context) ([]*entity.SaleDetail, error) {
	srv.logger.Debug("Listing sale details")

	var details []*entity.SaleDetail

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundDetails, err := repoFactory.SaleDetailRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list sale details")
		}
		details = foundDetails

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list sale details")
	}

	return details, nil
}

// UpdateSaleDetail applies a partial update to a line. Reassigning the sale
// or the product always re-validates the new reference before the write.
func (srv *saleDetailService) UpdateSaleDetail(ctx context.Context, id uuid.UUID, input *usecase.UpdateSaleDetailInput) (*entity.SaleDetail, error) {
	srv.logger.Info("Updating sale detail", "saleDetailID", id)

	if input.Quantity != nil && *input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	var detail *entity.SaleDetail

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		detailRepo := repoFactory.SaleDetailRepo()

		// 1. Find the line.
		foundDetail, err := detailRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSaleDetailNotFound) {
				return errors.Wrap(domainerrors.ErrSaleDetailNotFound, "sale detail not found")
			}

			return errors.Wrap(err, "failed to find sale detail")
		}

		// 2. Re-validate reassigned references.
		if input.SaleID != nil {
			if _, err := repoFactory.SaleRepo().FindByID(ctx, *input.SaleID); err != nil {
				if errors.Is(err, repository.ErrSaleNotFound) {
					return errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found")
				}

				return errors.Wrap(err, "failed to find sale")
			}
			foundDetail.SaleID = *input.SaleID
		}
		if input.ProductID != nil {
			if _, err := repoFactory.ProductRepo().FindByID(ctx, *input.ProductID); err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
				}

				return errors.Wrap(err, "failed to find product")
			}
			foundDetail.ProductID = *input.ProductID
		}
		if input.Quantity != nil {
			foundDetail.Quantity = *input.Quantity
		}

		// 3. Save.
		if err := detailRepo.Update(ctx, foundDetail); err != nil {
			return errors.Wrap(err, "failed to update sale detail")
		}
		detail = foundDetail

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update sale detail")
	}

	return detail, nil
}

// DeleteSaleDetail removes a line by its ID.
func (srv *saleDetailService) DeleteSaleDetail(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting sale detail", "saleDetailID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SaleDetailRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrSaleDetailNotFound) {
				return errors.Wrap(domainerrors.ErrSaleDetailNotFound, "sale detail not found")
			}

			return errors.Wrap(err, "failed to delete sale detail")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete sale detail")
	}

	return nil
}
