package handler

import (
	"log/slog"
	"net/http"

	"emall/internal/delivery/http/response"
	"emall/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for adding a product
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Image       string `json:"image" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=255"`
	Price       int    `json:"price" validate:"min=0"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	ShopID      string `json:"shop_id" validate:"required,uuid"`
}

// UpdateProductRequest represents the request body for partially updating a product.
// Absent fields are left unchanged; explicit zero values are applied.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Image       *string `json:"image" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Price       *int    `json:"price" validate:"omitempty,min=0"`
	Quantity    *int    `json:"quantity" validate:"omitempty,min=0"`
}

// CreateProduct handles adding a product to a shop's catalog
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	input := &usecase.CreateProductInput{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ShopID:      shopID,
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// GetProduct handles retrieving a single product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// GetProductByName handles retrieving the first product matching a name
func (h *ProductHandler) GetProductByName(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Product name is required")
	}

	product, err := h.productUC.GetProductByName(c.Request().Context(), name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProducts handles retrieving the whole catalog
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// ListShopProducts handles retrieving all products of one shop
func (h *ProductHandler) ListShopProducts(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	products, err := h.productUC.ListShopProducts(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Shop products retrieved successfully")
}

// UpdateProduct handles partially updating a product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateProductInput{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), productID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles removing a product not referenced by any sale line
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"}, "Product deleted successfully")
}
