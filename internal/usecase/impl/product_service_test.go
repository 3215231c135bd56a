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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service   usecase.ProductUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProductService(txManager, logger)

	return productServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	shopID := uuid.New()
	input := &usecase.CreateProductInput{
		Name:        "Sourdough Loaf",
		Image:       "https://cdn.example.com/sourdough.png",
		Description: "Naturally leavened",
		Price:       650,
		Quantity:    12,
		ShopID:      shopID,
	}
	owningShop := &entity.Shop{ID: shopID, Name: "Corner Bakery"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(owningShop, nil)
			mockProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, product.Name)
	assert.Equal(t, shopID, product.ShopID)
}

func TestProductService_GetProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	expectedProduct := &entity.Product{
		ID:    productID,
		Name:  "Sourdough Loaf",
		Price: 650,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(expectedProduct, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
}

func TestProductService_GetProductByName_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expectedProduct := &entity.Product{
		ID:   uuid.New(),
		Name: "Sourdough Loaf",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByName(ctx, "Sourdough Loaf").Return(expectedProduct, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.GetProductByName(ctx, "Sourdough Loaf")

	require.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
}

func TestProductService_ListShopProducts_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	shopID := uuid.New()
	owningShop := &entity.Shop{ID: shopID, Name: "Corner Bakery"}
	expectedProducts := []*entity.Product{
		{ID: uuid.New(), Name: "Sourdough Loaf", ShopID: shopID},
		{ID: uuid.New(), Name: "Baguette", ShopID: shopID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(owningShop, nil)
			mockProductRepo.EXPECT().FindByShop(ctx, shopID).Return(expectedProducts, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	products, err := fx.service.ListShopProducts(ctx, shopID)

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	newPrice := 700
	input := &usecase.UpdateProductInput{
		Price: &newPrice,
	}

	existingProduct := &entity.Product{
		ID:       productID,
		Name:     "Sourdough Loaf",
		Price:    650,
		Quantity: 12,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existingProduct, nil)
			mockProductRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, productID, input)

	require.NoError(t, err)
	assert.Equal(t, 700, product.Price)
	assert.Equal(t, "Sourdough Loaf", product.Name)
	assert.Equal(t, 12, product.Quantity)
}

// A quantity of zero is a real update, not an omitted field. Selling out a
// product must stick.
func TestProductService_UpdateProduct_QuantityZero(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	soldOut := 0
	input := &usecase.UpdateProductInput{
		Quantity: &soldOut,
	}

	existingProduct := &entity.Product{
		ID:       productID,
		Name:     "Sourdough Loaf",
		Quantity: 12,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existingProduct, nil)
			mockProductRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, productID, input)

	require.NoError(t, err)
	assert.Equal(t, 0, product.Quantity)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	existingProduct := &entity.Product{
		ID:   productID,
		Name: "Sourdough Loaf",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existingProduct, nil)
			mockDetailRepo.EXPECT().CountByProduct(ctx, productID).Return(int64(0), nil)
			mockProductRepo.EXPECT().Delete(ctx, productID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
}
