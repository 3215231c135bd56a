package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"emall/internal/delivery/http/validator"
	"emall/internal/domain/entity"
	domainerrors "emall/internal/domain/errors"
	mockUsecase "emall/internal/mocks/usecase"
	"emall/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShopHandlerTest(t *testing.T) (*ShopHandler, *mockUsecase.MockShopUsecase, *echo.Echo) {
	t.Helper()

	mockUC := mockUsecase.NewMockShopUsecase(t)
	h := &ShopHandler{
		shopUC: mockUC,
		logger: slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()

	return h, mockUC, e
}

func TestShopHandler_CreateShop(t *testing.T) {
	h, mockUC, e := newShopHandlerTest(t)

	shopID := uuid.New()
	mockUC.EXPECT().
		CreateShop(mock.Anything, mock.AnythingOfType("*usecase.CreateShopInput")).
		Run(func(_ context.Context, input *usecase.CreateShopInput) {
			assert.Equal(t, "Corner Books", input.Name)
			assert.Equal(t, "books@example.com", input.Email)
		}).
		Return(&entity.Shop{ID: shopID, Name: "Corner Books"}, nil)

	body := `{"name":"Corner Books","logo":"logo.png","description":"Used books","phone":"555-0101","address":"1 Main St","email":"books@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/shops", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateShop(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "Corner Books")
	assert.Contains(t, rec.Body.String(), shopID.String())
}

func TestShopHandler_CreateShop_MissingEmail(t *testing.T) {
	h, _, e := newShopHandlerTest(t)

	body := `{"name":"Corner Books","logo":"logo.png","description":"Used books","phone":"555-0101","address":"1 Main St"}`
	req := httptest.NewRequest(http.MethodPost, "/shops", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateShop(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestShopHandler_GetShop_InvalidID(t *testing.T) {
	h, _, e := newShopHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/shops/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetShop(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestShopHandler_GetShop_NotFound(t *testing.T) {
	h, mockUC, e := newShopHandlerTest(t)

	shopID := uuid.New()
	mockUC.EXPECT().
		GetShop(mock.Anything, shopID).
		Return(nil, domainerrors.ErrShopNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/shops/:id")
	c.SetParamNames("id")
	c.SetParamValues(shopID.String())

	require.NoError(t, h.GetShop(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SHOP_NOT_FOUND")
}

func TestShopHandler_DeleteShop_HasDependents(t *testing.T) {
	h, mockUC, e := newShopHandlerTest(t)

	shopID := uuid.New()
	mockUC.EXPECT().
		DeleteShop(mock.Anything, shopID).
		Return(domainerrors.ErrHasDependents)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/shops/:id")
	c.SetParamNames("id")
	c.SetParamValues(shopID.String())

	require.NoError(t, h.DeleteShop(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "HAS_DEPENDENTS")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
