package postgres

import (
	"context"

	"emall/internal/domain/entity"
	domainerrors "emall/internal/domain/errors"
	"emall/internal/domain/repository"
	"emall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleDetailRepository implements the repository.SaleDetailRepository interface.
type saleDetailRepository struct {
	db *gorm.DB
}

// NewSaleDetailRepository is the constructor for saleDetailRepository.
func NewSaleDetailRepository(db *gorm.DB) repository.SaleDetailRepository {
	return &saleDetailRepository{
		db: db,
	}
}

// Create persists a new sale line item.
func (repo *saleDetailRepository) Create(ctx context.Context, detail *entity.SaleDetail) error {
	detailM := fromSaleDetailDomain(detail)

	if err := repo.db.WithContext(ctx).Create(detailM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("sale detail references a missing sale or product")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required sale detail information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale detail")
	}

	// Update the entity with generated values
	detail.ID = detailM.ID
	detail.CreatedAt = detailM.CreatedAt
	detail.UpdatedAt = detailM.UpdatedAt

	return nil
}

// FindByID retrieves a line item by its unique ID.
func (repo *saleDetailRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SaleDetail, error) {
	var detailM model.SaleDetailModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&detailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale detail by ID")
	}

	return toSaleDetailDomain(&detailM), nil
}

// FindAll retrieves every line item with its sale and product preloaded.
func (repo *saleDetailRepository) FindAll(ctx context.Context) ([]*entity.SaleDetail, error) {
	var detailModels []*model.SaleDetailModel

	if err := repo.db.WithContext(ctx).
		Preload("Sale").
		Preload("Product").
		Order("created_at ASC").
		Find(&detailModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sale details")
	}

	details := make([]*entity.SaleDetail, 0, len(detailModels))
	for _, detailM := range detailModels {
		details = append(details, toSaleDetailDomain(detailM))
	}

	return details, nil
}

// CountBySale counts the line items attached to a sale.
func (repo *saleDetailRepository) CountBySale(ctx context.Context, saleID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SaleDetailModel{}).
		Where("sale_id = ?", saleID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sale details by sale")
	}

	return count, nil
}

// CountByProduct counts the line items referencing a product.
func (repo *saleDetailRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SaleDetailModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sale details by product")
	}

	return count, nil
}

// Update saves the mutable fields of an existing line item.
func (repo *saleDetailRepository) Update(ctx context.Context, detail *entity.SaleDetail) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SaleDetailModel{}).
		Where("id = ?", detail.ID).
		Updates(map[string]any{
			"quantity":   detail.Quantity,
			"sale_id":    detail.SaleID,
			"product_id": detail.ProductID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("sale detail references a missing sale or product")
		}

		return errors.Wrap(result.Error, "failed to update sale detail")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleDetailNotFound
	}

	return nil
}

// Delete removes a line item by its ID.
func (repo *saleDetailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SaleDetailModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete sale detail")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleDetailNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSaleDetailDomain converts a GORM SaleDetailModel to a domain SaleDetail entity.
func toSaleDetailDomain(data *model.SaleDetailModel) *entity.SaleDetail {
	if data == nil {
		return nil
	}

	return &entity.SaleDetail{
		ID:        data.ID,
		Quantity:  data.Quantity,
		SaleID:    data.SaleID,
		ProductID: data.ProductID,
		Sale:      toSaleDomain(data.Sale),
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSaleDetailDomain converts a domain SaleDetail entity to a GORM SaleDetailModel.
func fromSaleDetailDomain(data *entity.SaleDetail) *model.SaleDetailModel {
	if data == nil {
		return nil
	}

	return &model.SaleDetailModel{
		ID:        data.ID,
		Quantity:  data.Quantity,
		SaleID:    data.SaleID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
