package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"emall/internal/domain/entity"
	"emall/internal/domain/repository"
	mockRepo "emall/internal/mocks/repository"
	"emall/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shopServiceFixtures holds all test dependencies for shop service tests.
type shopServiceFixtures struct {
	service   usecase.ShopUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewShopService(txManager, logger)

	return shopServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestShopService_CreateShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	input := &usecase.CreateShopInput{
		Name:        "Corner Bakery",
		Logo:        "https://cdn.example.com/bakery.png",
		Description: "Fresh bread daily",
		Phone:       "555-0101",
		Address:     "1 Main St",
		Email:       "bakery@example.com",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindByName(ctx, input.Name).Return(nil, repository.ErrShopNotFound)
			mockShopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	shop, err := fx.service.CreateShop(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, shop.Name)
	assert.Equal(t, input.Email, shop.Email)
}

func TestShopService_GetShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopID := uuid.New()
	expectedShop := &entity.Shop{
		ID:   shopID,
		Name: "Corner Bakery",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(expectedShop, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	shop, err := fx.service.GetShop(ctx, shopID)

	require.NoError(t, err)
	assert.Equal(t, expectedShop, shop)
}

func TestShopService_ListShops_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	expectedShops := []*entity.Shop{
		{ID: uuid.New(), Name: "Corner Bakery"},
		{ID: uuid.New(), Name: "Hardware Store"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindAll(ctx).Return(expectedShops, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	shops, err := fx.service.ListShops(ctx)

	require.NoError(t, err)
	assert.Len(t, shops, 2)
	assert.Equal(t, expectedShops, shops)
}

func TestShopService_RenameShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopID := uuid.New()
	existingShop := &entity.Shop{
		ID:   shopID,
		Name: "Corner Bakery",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(existingShop, nil)
			mockShopRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	shop, err := fx.service.RenameShop(ctx, shopID, "Village Bakery")

	require.NoError(t, err)
	assert.Equal(t, "Village Bakery", shop.Name)
}

func TestShopService_DeleteShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopID := uuid.New()
	existingShop := &entity.Shop{
		ID:   shopID,
		Name: "Corner Bakery",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(existingShop, nil)
			mockProductRepo.EXPECT().CountByShop(ctx, shopID).Return(int64(0), nil)
			mockShopRepo.EXPECT().Delete(ctx, shopID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteShop(ctx, shopID)

	require.NoError(t, err)
}
