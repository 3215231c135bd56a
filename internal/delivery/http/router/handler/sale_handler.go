package handler

import (
	"log/slog"
	"net/http"
	"time"

	"emall/internal/delivery/http/response"
	"emall/internal/domain/entity"
	"emall/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	SaleUC usecase.SaleUsecase
	Logger *slog.Logger
}

// SaleHandler holds dependencies for sale-related handlers
type SaleHandler struct {
	saleUC usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{
		saleUC: params.SaleUC,
		logger: params.Logger,
	}
}

// CreateSaleRequest represents the request body for opening a sale
type CreateSaleRequest struct {
	Date   time.Time `json:"date" validate:"required"`
	Total  int       `json:"total" validate:"min=0"`
	Status int       `json:"status"`
}

// UpdateSaleRequest represents the request body for partially updating a sale.
// Absent fields are left unchanged; explicit zero values are applied.
type UpdateSaleRequest struct {
	Date   *time.Time `json:"date"`
	Total  *int       `json:"total" validate:"omitempty,min=0"`
	Status *int       `json:"status"`
}

// SaleResponse renders a sale with both the status code and its label
type SaleResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Total       int       `json:"total"`
	Status      int       `json:"status"`
	StatusLabel string    `json:"status_label"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newSaleResponse(sale *entity.Sale) *SaleResponse {
	return &SaleResponse{
		ID:          sale.ID,
		Date:        sale.Date,
		Total:       sale.Total,
		Status:      sale.Status.Code(),
		StatusLabel: sale.Status.String(),
		CreatedAt:   sale.CreatedAt,
		UpdatedAt:   sale.UpdatedAt,
	}
}

func newSaleResponseList(sales []*entity.Sale) []*SaleResponse {
	out := make([]*SaleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, newSaleResponse(sale))
	}

	return out
}

// CreateSale handles opening a new sale
func (h *SaleHandler) CreateSale(c echo.Context) error {
	var req CreateSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateSaleInput{
		Date:   req.Date,
		Total:  req.Total,
		Status: req.Status,
	}

	sale, err := h.saleUC.CreateSale(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSaleResponse(sale), "Sale created successfully")
}

// GetSale handles retrieving a single sale by ID
func (h *SaleHandler) GetSale(c echo.Context) error {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	sale, err := h.saleUC.GetSale(c.Request().Context(), saleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSaleResponse(sale), "Sale retrieved successfully")
}

// ListSales handles retrieving all sales, newest first
func (h *SaleHandler) ListSales(c echo.Context) error {
	sales, err := h.saleUC.ListSales(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSaleResponseList(sales), "Sales retrieved successfully")
}

// UpdateSale handles partially updating a sale
func (h *SaleHandler) UpdateSale(c echo.Context) error {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	var req UpdateSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateSaleInput{
		Date:   req.Date,
		Total:  req.Total,
		Status: req.Status,
	}

	sale, err := h.saleUC.UpdateSale(c.Request().Context(), saleID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSaleResponse(sale), "Sale updated successfully")
}

// PaySale handles marking a sale as paid
func (h *SaleHandler) PaySale(c echo.Context) error {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	sale, err := h.saleUC.MarkSalePaid(c.Request().Context(), saleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSaleResponse(sale), "Sale marked as paid")
}

// ProgressSale handles moving a sale back to in-progress
func (h *SaleHandler) ProgressSale(c echo.Context) error {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	sale, err := h.saleUC.MarkSaleInProgress(c.Request().Context(), saleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSaleResponse(sale), "Sale marked as in progress")
}

// DeleteSale handles removing a sale without line items
func (h *SaleHandler) DeleteSale(c echo.Context) error {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	if err := h.saleUC.DeleteSale(c.Request().Context(), saleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Sale deleted successfully"}, "Sale deleted successfully")
}
