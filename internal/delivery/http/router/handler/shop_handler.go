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

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop-related handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShopRequest represents the request body for registering a shop
type CreateShopRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Logo        string `json:"logo" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"required,max=255"`
	Address     string `json:"address" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
}

// RenameShopRequest represents the request body for renaming a shop
type RenameShopRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CreateShop handles shop registration
func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req CreateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateShopInput{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Phone:       req.Phone,
		Address:     req.Address,
		Email:       req.Email,
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shop, "Shop created successfully")
}

// GetShop handles retrieving a single shop by ID
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop retrieved successfully")
}

// ListShops handles retrieving all shops
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.shopUC.ListShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops, "Shops retrieved successfully")
}

// RenameShop handles changing a shop's display name
func (h *ShopHandler) RenameShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req RenameShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shop, err := h.shopUC.RenameShop(c.Request().Context(), shopID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop renamed successfully")
}

// DeleteShop handles removing a shop without products
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	if err := h.shopUC.DeleteShop(c.Request().Context(), shopID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Shop deleted successfully"}, "Shop deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
