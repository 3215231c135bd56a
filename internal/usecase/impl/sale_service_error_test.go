package impl

import (
	"context"
	"testing"
	"time"

	"emall/internal/domain/entity"
	domainerrors "emall/internal/domain/errors"
	"emall/internal/domain/repository"
	mockRepo "emall/internal/mocks/repository"
	"emall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Status codes outside the defined set are rejected before the transaction
// starts; no repository call is made.
func TestSaleService_CreateSale_UnknownStatus(t *testing.T) {
	ctx := context.Background()

	for _, code := range []int{-1, 4, 99} {
		fx := createTestSaleService(t)
		input := &usecase.CreateSaleInput{
			Date:   time.Now(),
			Total:  100,
			Status: code,
		}

		_, err := fx.service.CreateSale(ctx, input)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidSaleStatus))
	}
}

func TestSaleService_UpdateSale_UnknownStatus(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	badStatus := 7
	input := &usecase.UpdateSaleInput{
		Status: &badStatus,
	}

	_, err := fx.service.UpdateSale(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSaleStatus))
}

func TestSaleService_GetSale_NotFound(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(nil, repository.ErrSaleNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found"))

	_, err := fx.service.GetSale(ctx, saleID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))
}

func TestSaleService_MarkSalePaid_NotFound(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(nil, repository.ErrSaleNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found"))

	_, err := fx.service.MarkSalePaid(ctx, saleID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))
}

func TestSaleService_DeleteSale_StillHasDetails(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()
	existingSale := &entity.Sale{
		ID:     saleID,
		Status: entity.SaleStatusRegistered,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(existingSale, nil)
			mockDetailRepo.EXPECT().CountBySale(ctx, saleID).Return(int64(1), nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrHasDependents, "sale still has sale details"))

	err := fx.service.DeleteSale(ctx, saleID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHasDependents))
}
