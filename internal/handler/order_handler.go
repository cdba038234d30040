package handler

import (
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// POST /order/new
// 注文者はトークンのユーザー
func (h *OrderHandler) Create(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	o, err := h.uc.CreateOrder(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

// GET /order/:id
func (h *OrderHandler) Get(c echo.Context) error {
	o, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}
