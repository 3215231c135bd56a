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
	"github.com/stretchr/testify/require"
)

// Drives the full shop -> product -> sale -> sale detail -> paid sequence
// through the services, then verifies that deleting the product while its
// sale line still exists is rejected.
func TestMarketplaceFlow_ShopToPaidSale(t *testing.T) {
	ctx := context.Background()

	shopFx := createTestShopService(t)
	productFx := createTestProductService(t)
	saleFx := createTestSaleService(t)
	detailFx := createTestSaleDetailService(t)

	shopID := uuid.New()
	productID := uuid.New()
	saleID := uuid.New()

	// 1. Register the shop.
	shopFx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindByName(ctx, "Corner Books").Return(nil, repository.ErrShopNotFound)
			mockShopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).
				Run(func(ctx context.Context, shop *entity.Shop) {
					shop.ID = shopID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	shop, err := shopFx.service.CreateShop(ctx, &usecase.CreateShopInput{
		Name:        "Corner Books",
		Logo:        "logo.png",
		Description: "Used books",
		Phone:       "555-0101",
		Address:     "1 Main St",
		Email:       "books@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, shopID, shop.ID)

	// 2. Stock a product in it.
	productFx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(shop, nil)
			mockProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					product.ID = productID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	product, err := productFx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:     "City Atlas",
		Image:    "atlas.png",
		Price:    1800,
		Quantity: 5,
		ShopID:   shopID,
	})
	require.NoError(t, err)
	require.Equal(t, productID, product.ID)

	// 3. Open a sale.
	saleFx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Sale")).
				Run(func(ctx context.Context, sale *entity.Sale) {
					sale.ID = saleID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	sale, err := saleFx.service.CreateSale(ctx, &usecase.CreateSaleInput{
		Date:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Total:  1800,
		Status: entity.SaleStatusInProgress.Code(),
	})
	require.NoError(t, err)
	require.Equal(t, saleID, sale.ID)

	// 4. Attach the product as a sale line.
	detailFx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(sale, nil)
			mockDetailRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SaleDetail")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	detail, err := detailFx.service.CreateSaleDetail(ctx, &usecase.CreateSaleDetailInput{
		Quantity:  1,
		SaleID:    saleID,
		ProductID: productID,
	})
	require.NoError(t, err)
	assert.Equal(t, saleID, detail.SaleID)
	assert.Equal(t, productID, detail.ProductID)

	// 5. Mark the sale paid.
	saleFx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockSaleRepo.EXPECT().FindByID(ctx, saleID).Return(sale, nil)
			mockSaleRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	paidSale, err := saleFx.service.MarkSalePaid(ctx, saleID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPaid, paidSale.Status)

	// 6. The product is still referenced by the sale line; deleting it
	// must be rejected.
	productFx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockDetailRepo := mockRepo.NewMockSaleDetailRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().SaleDetailRepo().Return(mockDetailRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
			mockDetailRepo.EXPECT().CountByProduct(ctx, productID).Return(int64(1), nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrHasDependents, "product is referenced by sale details")).
		Once()

	err = productFx.service.DeleteProduct(ctx, productID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHasDependents))
}
