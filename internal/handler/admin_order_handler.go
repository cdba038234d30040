package handler

import (
	"net/http"

	"shop/internal/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc *usecase.AdminOrderUsecase
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

// GET /order?status=
func (h *AdminOrderHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), repository.AdminOrderListFilter{
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// PUT /order/:id
func (h *AdminOrderHandler) Update(c echo.Context) error {
	// ★操作した管理者（監査ログ用）
	actor, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	var req usecase.UpdateOrderInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	o, err := h.uc.UpdateOrder(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

// DELETE /order/:id
func (h *AdminOrderHandler) Delete(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "Order deleted successfully.")
}

// PUT /order/item/:id
func (h *AdminOrderHandler) UpdateItem(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	var req usecase.UpdateItemInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	it, err := h.uc.UpdateItem(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// DELETE /order/item/:id
func (h *AdminOrderHandler) DeleteItem(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteItem(c.Request().Context(), actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "Item deleted successfully.")
}
