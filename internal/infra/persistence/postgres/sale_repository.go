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

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create persists a new sale.
func (repo *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required sale information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	// Update the entity with generated values
	sale.ID = saleM.ID
	sale.CreatedAt = saleM.CreatedAt
	sale.UpdatedAt = saleM.UpdatedAt

	return nil
}

// FindByID retrieves a sale by its unique ID.
func (repo *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return toSaleDomain(&saleM), nil
}

// FindAll retrieves every sale, newest date first.
func (repo *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel

	if err := repo.db.WithContext(ctx).
		Order("date DESC").
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, nil
}

// Update saves the mutable fields of an existing sale.
func (repo *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("id = ?", sale.ID).
		Updates(map[string]any{
			"date":   sale.Date,
			"total":  sale.Total,
			"status": sale.Status.Code(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update sale")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// Delete removes a sale by its ID.
func (repo *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SaleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete sale")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSaleDomain converts a GORM SaleModel to a domain Sale entity.
func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	return &entity.Sale{
		ID:        data.ID,
		Date:      data.Date,
		Total:     data.Total,
		Status:    entity.SaleStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSaleDomain converts a domain Sale entity to a GORM SaleModel.
func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	return &model.SaleModel{
		ID:        data.ID,
		Date:      data.Date,
		Total:     data.Total,
		Status:    data.Status.Code(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
