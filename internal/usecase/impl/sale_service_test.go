package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"emall/internal/domain/entity"
	"emall/internal/domain/repository"
	mockRepo "emall/internal/mocks/repository"
	"emall/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// saleServiceFixtures holds all test dependencies for sale service tests.
type saleServiceFixtures struct {
	service   usecase.SaleUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSaleService(t *testing.T) saleServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSaleService(txManager, logger)

	return saleServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestSaleService_CreateSale_Success(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	input := &usecase.CreateSaleInput{
		Date:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Total:  1300,
		Status: entity.SaleStatusRegistered.Code(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	sale, err := fx.service.CreateSale(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusRegistered, sale.Status)
	assert.Equal(t, 1300, sale.Total)
}

// All four defined status codes are accepted at creation; the state machine
// places no restriction on the starting state.
func TestSaleService_CreateSale_AllDefinedStatuses(t *testing.T) {
	ctx := context.Background()

	for _, status := range []entity.SaleStatus{
		entity.SaleStatusInProgress,
		entity.SaleStatusRegistered,
		entity.SaleStatusPaid,
		entity.SaleStatusNulled,
	} {
		fx := createTestSaleService(t)
		input := &usecase.CreateSaleInput{
			Date:   time.Now(),
			Total:  100,
			Status: status.Code(),
		}

		fx.txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
				mockFactory := mockRepo.NewMockRepositoryFactory(t)
				mockSaleRepo := mockRepo.NewMockSaleRepository(t)

				mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
				mockSaleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)

				_ = fn(mockFactory)
			}).
			Return(nil)

		sale, err := fx.service.CreateSale(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, status, sale.Status)
	}
}

func TestSaleService_GetSale_Success(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()
	expectedSale := &entity.Sale{
		ID:     saleID,
		Total:  1300,
		Status: entity.SaleStatusRegistered,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(expectedSale, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	sale, err := fx.service.GetSale(ctx, saleID)

	require.NoError(t, err)
	assert.Equal(t, expectedSale, sale)
}

func TestSaleService_UpdateSale_PartialFields(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()
	newTotal := 0
	input := &usecase.UpdateSaleInput{
		Total: &newTotal,
	}

	existingSale := &entity.Sale{
		ID:     saleID,
		Date:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Total:  1300,
		Status: entity.SaleStatusNulled,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(existingSale, nil)
			mockSaleRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	sale, err := fx.service.UpdateSale(ctx, saleID, input)

	require.NoError(t, err)
	assert.Equal(t, 0, sale.Total)
	assert.Equal(t, entity.SaleStatusNulled, sale.Status)
}

func TestSaleService_MarkSalePaid_Success(t *testing.T) {
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

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(existingSale, nil)
			mockSaleRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	sale, err := fx.service.MarkSalePaid(ctx, saleID)

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPaid, sale.Status)
}

// Marking an already paid sale as paid succeeds and leaves it paid.
func TestSaleService_MarkSalePaid_Idempotent(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()
	existingSale := &entity.Sale{
		ID:     saleID,
		Status: entity.SaleStatusPaid,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(existingSale, nil)
			mockSaleRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	sale, err := fx.service.MarkSalePaid(ctx, saleID)

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPaid, sale.Status)
}

// Marking in progress is unconditional, even from paid.
func TestSaleService_MarkSaleInProgress_FromPaid(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()
	existingSale := &entity.Sale{
		ID:     saleID,
		Status: entity.SaleStatusPaid,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(existingSale, nil)
			mockSaleRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	sale, err := fx.service.MarkSaleInProgress(ctx, saleID)

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusInProgress, sale.Status)
}

func TestSaleService_DeleteSale_Success(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()
	existingSale := &entity.Sale{
		ID:     saleID,
		Status: entity.SaleStatusNulled,
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
			mockDetailRepo.EXPECT().CountBySale(ctx, saleID).Return(int64(0), nil)
			mockSaleRepo.EXPECT().Delete(ctx, saleID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteSale(ctx, saleID)

	require.NoError(t, err)
}
