// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"emall/internal/delivery/http/middleware"
	"emall/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler       *handler.ShopHandler
	ProductHandler    *handler.ProductHandler
	SaleHandler       *handler.SaleHandler
	SaleDetailHandler *handler.SaleDetailHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	shopHandler       *handler.ShopHandler
	productHandler    *handler.ProductHandler
	saleHandler       *handler.SaleHandler
	saleDetailHandler *handler.SaleDetailHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shopHandler:       params.ShopHandler,
		productHandler:    params.ProductHandler,
		saleHandler:       params.SaleHandler,
		saleDetailHandler: params.SaleDetailHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	shopGroup := e.Group("/shops")
	{
		shopGroup.GET("", r.shopHandler.ListShops)
		shopGroup.POST("", r.shopHandler.CreateShop)
		shopGroup.GET("/:id", r.shopHandler.GetShop)
		shopGroup.PUT("/:id", r.shopHandler.RenameShop)
		shopGroup.DELETE("/:id", r.shopHandler.DeleteShop)
		shopGroup.GET("/:id/products", r.productHandler.ListShopProducts)
	}

	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("/name/:name", r.productHandler.GetProductByName)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.PATCH("/:id", r.productHandler.UpdateProduct)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	// Sale mutations require authentication
	saleGroup := e.Group("/sales")
	{
		saleGroup.GET("", r.saleHandler.ListSales)
		saleGroup.GET("/:id", r.saleHandler.GetSale)

		saleWrite := saleGroup.Group("")
		saleWrite.Use(r.authMiddleware.Authenticate)
		saleWrite.POST("", r.saleHandler.CreateSale)
		saleWrite.PATCH("/:id", r.saleHandler.UpdateSale)
		saleWrite.DELETE("/:id", r.saleHandler.DeleteSale)
		saleWrite.POST("/:id/pay", r.saleHandler.PaySale)
		saleWrite.POST("/:id/progress", r.saleHandler.ProgressSale)
	}

	detailGroup := e.Group("/details")
	{
		detailGroup.GET("", r.saleDetailHandler.ListSaleDetails)

		detailWrite := detailGroup.Group("")
		detailWrite.Use(r.authMiddleware.Authenticate)
		detailWrite.POST("", r.saleDetailHandler.CreateSaleDetail)
		detailWrite.PATCH("/:id", r.saleDetailHandler.UpdateSaleDetail)
		detailWrite.DELETE("/:id", r.saleDetailHandler.DeleteSaleDetail)
	}
}
