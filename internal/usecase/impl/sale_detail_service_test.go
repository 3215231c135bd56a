package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"emall/internal/domain/entity"
	domainerrors "emall/internal/domain/errors"
	"emall/internal/domain/repository"
	mockRepo "emall/internal/mocks/repository"
	"emall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// saleDetailServiceFixtures holds all test dependencies for sale detail service tests.
type saleDetailServiceFixtures struct {
	service   usecase.SaleDetailUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSaleDetailService(t *testing.T) saleDetailServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSaleDetailService(txManager, logger)

	return saleDetailServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestSaleDetailService_CreateSaleDetail_Success(t *testing.T) {
	fx := createTestSaleDetailService(t)

	ctx := context.Background()
	saleID := uuid.New()
	productID := uuid.New()
	input := &usecase.CreateSaleDetailInput{
		Quantity:  3,
		SaleID:    saleID,
		ProductID: productID,
	}

	existingProduct := &entity.Product{ID: productID, Name: "Sourdough Loaf"}
	existingSale := &entity.Sale{ID: saleID, Status: entity.SaleStatusInProgress}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existingProduct, nil)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(existingSale, nil)
			mockDetailRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SaleDetail")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	detail, err := fx.service.CreateSaleDetail(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 3, detail.Quantity)
	assert.Equal(t, saleID, detail.SaleID)
	assert.Equal(t, productID, detail.ProductID)
}

// A non-positive quantity is rejected before any repository call.
func TestSaleDetailService_CreateSaleDetail_NonPositiveQuantity(t *testing.T) {
	ctx := context.Background()

	for _, qty := range []int{0, -1} {
		fx := createTestSaleDetailService(t)
		input := &usecase.CreateSaleDetailInput{
			Quantity:  qty,
			SaleID:    uuid.New(),
			ProductID: uuid.New(),
		}

		_, err := fx.service.CreateSaleDetail(ctx, input)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestSaleDetailService_CreateSaleDetail_UnknownProduct(t *testing.T) {
	fx := createTestSaleDetailService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.CreateSaleDetailInput{
		Quantity:  1,
		SaleID:    uuid.New(),
		ProductID: productID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProductNotFound, "product not found"))

	_, err := fx.service.CreateSaleDetail(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestSaleDetailService_CreateSaleDetail_UnknownSale(t *testing.T) {
	fx := createTestSaleDetailService(t)

	ctx := context.Background()
	saleID := uuid.New()
	productID := uuid.New()
	input := &usecase.CreateSaleDetailInput{
		Quantity:  1,
		SaleID:    saleID,
		ProductID: productID,
	}

	existingProduct := &entity.Product{ID: productID, Name: "Sourdough Loaf"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existingProduct, nil)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(nil, repository.ErrSaleNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found"))

	_, err := fx.service.CreateSaleDetail(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))
}

func TestSaleDetailService_ListSaleDetails_Success(t *testing.T) {
	fx := createTestSaleDetailService(t)

	ctx := context.Background()
	expectedDetails := []*entity.SaleDetail{
		{ID: uuid.New(), Quantity: 2, SaleID: uuid.New(), ProductID: uuid.New()},
		{ID: uuid.New(), Quantity: 5, SaleID: uuid.New(), ProductID: uuid.New()},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)

			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockDetailRepo.EXPECT().FindAll(ctx).Return(expectedDetails, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	details, err := fx.service.ListSaleDetails(ctx)

	require.NoError(t, err)
	assert.Len(t, details, 2)
}

// Reassigning a line to another sale re-validates the new sale before the
// write goes through.
func TestSaleDetailService_UpdateSaleDetail_ReassignSale(t *testing.T) {
	fx := createTestSaleDetailService(t)

	ctx := context.Background()
	detailID := uuid.New()
	newSaleID := uuid.New()
	input := &usecase.UpdateSaleDetailInput{
		SaleID: &newSaleID,
	}

	existingDetail := &entity.SaleDetail{
		ID:        detailID,
		Quantity:  2,
		SaleID:    uuid.New(),
		ProductID: uuid.New(),
	}
	newSale := &entity.Sale{ID: newSaleID, Status: entity.SaleStatusInProgress}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockDetailRepo.EXPECT().FindByID(ctx, detailID).Return(existingDetail, nil)
			mockSaleRepo.EXPECT().FindByID(ctx, newSaleID).Return(newSale, nil)
			mockDetailRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.SaleDetail")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	detail, err := fx.service.UpdateSaleDetail(ctx, detailID, input)

	require.NoError(t, err)
	assert.Equal(t, newSaleID, detail.SaleID)
}

func TestSaleDetailService_UpdateSaleDetail_ReassignUnknownProduct(t *testing.T) {
	fx := createTestSaleDetailService(t)

	ctx := context.Background()
	detailID := uuid.New()
	newProductID := uuid.New()
	input := &usecase.UpdateSaleDetailInput{
		ProductID: &newProductID,
	}

	existingDetail := &entity.SaleDetail{
		ID:        detailID,
		Quantity:  2,
		SaleID:    uuid.New(),
		ProductID: uuid.New(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockDetailRepo.EXPECT().FindByID(ctx, detailID).Return(existingDetail, nil)
			mockProductRepo.EXPECT().FindByID(ctx, newProductID).Return(nil, repository.ErrProductNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProductNotFound, "product not found"))

	_, err := fx.service.UpdateSaleDetail(ctx, detailID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestSaleDetailService_DeleteSaleDetail_Success(t *testing.T) {
	fx := createTestSaleDetailService(t)

	ctx := context.Background()
	detailID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)

			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockDetailRepo.EXPECT().Delete(ctx, detailID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteSaleDetail(ctx, detailID)

	require.NoError(t, err)
}

func TestSaleDetailService_DeleteSaleDetail_NotFound(t *testing.T) {
	fx := createTestSaleDetailService(t)

	ctx := context.Background()
	detailID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)

			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockDetailRepo.EXPECT().Delete(ctx, detailID).Return(repository.ErrSaleDetailNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSaleDetailNotFound, "sale detail not found"))

	err := fx.service.DeleteSaleDetail(ctx, detailID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleDetailNotFound))
}
