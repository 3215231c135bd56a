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

// SaleDetailHandlerParams holds dependencies for SaleDetailHandler, injected by Fx.
type SaleDetailHandlerParams struct {
	fx.In

	SaleDetailUC usecase.SaleDetailUsecase
	Logger       *slog.Logger
}

// SaleDetailHandler holds dependencies for sale line item handlers
type SaleDetailHandler struct {
	saleDetailUC usecase.SaleDetailUsecase
	logger       *slog.Logger
}

// NewSaleDetailHandler is the constructor for SaleDetailHandler
func NewSaleDetailHandler(params SaleDetailHandlerParams) *SaleDetailHandler {
	return &SaleDetailHandler{
		saleDetailUC: params.SaleDetailUC,
		logger:       params.Logger,
	}
}

// CreateSaleDetailRequest represents the request body for adding a line item
type CreateSaleDetailRequest struct {
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	SaleID    string `json:"sale_id" validate:"required,uuid"`
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// UpdateSaleDetailRequest represents the request body for partially updating a line item.
// Absent fields are left unchanged.
type UpdateSaleDetailRequest struct {
	Quantity  *int    `json:"quantity" validate:"omitempty,min=1"`
	SaleID    *string `json:"sale_id" validate:"omitempty,uuid"`
	ProductID *string `json:"product_id" validate:"omitempty,uuid"`
}

// CreateSaleDetail handles adding a line item to a sale
func (h *SaleDetailHandler) CreateSaleDetail(c echo.Context) error {
	var req CreateSaleDetailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale detail input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	saleID, err := uuid.Parse(req.SaleID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	input := &usecase.CreateSaleDetailInput{
		Quantity:  req.Quantity,
		SaleID:    saleID,
		ProductID: productID,
	}

	detail, err := h.saleDetailUC.CreateSaleDetail(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, detail, "Sale detail created successfully")
}

// ListSaleDetails handles retrieving all line items with their sale and product
func (h *SaleDetailHandler) ListSaleDetails(c echo.Context) error {
	details, err := h.saleDetailUC.ListSaleDetails(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details, "Sale details retrieved successfully")
}

// UpdateSaleDetail handles partially updating a line item
func (h *SaleDetailHandler) UpdateSaleDetail(c echo.Context) error {
	detailID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale detail ID")
	}

	var req UpdateSaleDetailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale detail input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateSaleDetailInput{
		Quantity: req.Quantity,
	}
	if req.SaleID != nil {
		saleID, err := uuid.Parse(*req.SaleID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
		}
		input.SaleID = &saleID
	}
	if req.ProductID != nil {
		productID, err := uuid.Parse(*req.ProductID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
		}
		input.ProductID = &productID
	}

	detail, err := h.saleDetailUC.UpdateSaleDetail(c.Request().Context(), detailID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Sale detail updated successfully")
}

// DeleteSaleDetail handles removing a line item
func (h *SaleDetailHandler) DeleteSaleDetail(c echo.Context) error {
	detailID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale detail ID")
	}

	if err := h.saleDetailUC.DeleteSaleDetail(c.Request().Context(), detailID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Sale detail deleted successfully"}, "Sale detail deleted successfully")
}
