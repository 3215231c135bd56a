package impl

import (
	"context"
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
)

// Creating a product against an unknown shop must fail before the insert is
// attempted, so nothing is persisted.
func TestProductService_CreateProduct_UnknownShop(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	shopID := uuid.New()
	input := &usecase.CreateProductInput{
		Name:   "Sourdough Loaf",
		ShopID: shopID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrShopNotFound, "shop not found"))

	_, err := fx.service.CreateProduct(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

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

	_, err := fx.service.GetProduct(ctx, productID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_ListShopProducts_UnknownShop(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrShopNotFound, "shop not found"))

	_, err := fx.service.ListShopProducts(ctx, shopID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestProductService_DeleteProduct_ReferencedBySaleDetails(t *testing.T) {
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
			mockDetailRepo.EXPECT().CountByProduct(ctx, productID).Return(int64(2), nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrHasDependents, "product is referenced by sale details"))

	err := fx.service.DeleteProduct(ctx, productID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHasDependents))
}
