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

// saleService implements the SaleUsecase interface.
type saleService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SaleUsecase {
	return &saleService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateSale records a new sale. The status code is caller-supplied and must
// be one of the four defined codes.
func (srv *saleService) CreateSale(ctx context.Context, input *usecase.CreateSaleInput) (*entity.Sale, error) {
	srv.logger.Info("Creating sale", "date", input.Date, "status", input.Status)

	status := entity.SaleStatus(input.Status)
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidSaleStatus, "status code %d", input.Status)
	}

	sale := &entity.Sale{
		Date:   input.Date,
		Total:  input.Total,
		Status: status,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SaleRepo().Create(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to create sale")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create sale")
	}

	return sale, nil
}

// GetSale retrieves a sale by its ID.
func (srv *saleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	srv.logger.Debug("Getting sale", "saleID", id)

	var sale *entity.Sale

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundSale, err := repoFactory.SaleRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found")
			}

			return errors.Wrap(err, "failed to find sale")
		}
		sale = foundSale

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get sale")
	}

	return sale, nil
}

// ListSales retrieves every sale in the ledger.
func (srv *saleService) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	srv.logger.Debug("Listing sales")

	var sales []*entity.Sale

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundSales, err := repoFactory.SaleRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list sales")
		}
		sales = foundSales

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return sales, nil
}

// UpdateSale applies a partial update to a sale. A nil field leaves the
// current value unchanged; a total of zero is settable for a nulled sale.
func (srv *saleService) UpdateSale(ctx context.Context, id uuid.UUID, input *usecase.UpdateSaleInput) (*entity.Sale, error) {
	srv.logger.Info("Updating sale", "saleID", id)

	if input.Status != nil && !entity.SaleStatus(*input.Status).IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidSaleStatus, "status code %d", *input.Status)
	}

	var sale *entity.Sale

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.SaleRepo()

		// 1. Find the sale.
		foundSale, err := saleRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found")
			}

			return errors.Wrap(err, "failed to find sale")
		}

		// 2. Apply the supplied fields.
		if input.Date != nil {
			foundSale.Date = *input.Date
		}
		if input.Total != nil {
			foundSale.Total = *input.Total
		}
		if input.Status != nil {
			foundSale.Status = entity.SaleStatus(*input.Status)
		}

		// 3. Save.
		if err := saleRepo.Update(ctx, foundSale); err != nil {
			return errors.Wrap(err, "failed to update sale")
		}
		sale = foundSale

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update sale")
	}

	return sale, nil
}

// DeleteSale removes a sale unless sale details still reference it.
func (srv *saleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting sale", "saleID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.SaleRepo()

		// 1. Find the sale.
		if _, err := saleRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found")
			}

			return errors.Wrap(err, "failed to find sale")
		}

		// 2. Deleting a sale with live lines would orphan them.
		count, err := repoFactory.SaleDetailRepo().CountBySale(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count sale details")
		}
		if count > 0 {
			return errors.Wrap(domainerrors.ErrHasDependents, "sale still has sale details")
		}

		// 3. Delete.
		if err := saleRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete sale")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete sale")
	}

	return nil
}

// MarkSalePaid sets the sale status to paid. The operation is idempotent and
// carries no guard against the current status.
func (srv *saleService) MarkSalePaid(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return srv.setStatus(ctx, id, entity.SaleStatusPaid)
}

// MarkSaleInProgress sets the sale status to in progress, unconditionally.
func (srv *saleService) MarkSaleInProgress(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return srv.setStatus(ctx, id, entity.SaleStatusInProgress)
}

func (srv *saleService) setStatus(ctx context.Context, id uuid.UUID, status entity.SaleStatus) (*entity.Sale, error) {
	srv.logger.Info("Setting sale status", "saleID", id, "status", status.String())

	var sale *entity.Sale

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.SaleRepo()

		foundSale, err := saleRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found")
			}

			return errors.Wrap(err, "failed to find sale")
		}

		foundSale.Status = status

		if err := saleRepo.Update(ctx, foundSale); err != nil {
			return errors.Wrap(err, "failed to update sale status")
		}
		sale = foundSale

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to set sale status")
	}

	return sale, nil
}
