package handler

import (
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 本人か管理者が使う /user/:id 以下
type UserHandler struct {
	users  *usecase.UserUsecase
	orders *usecase.OrderUsecase
}

func NewUserHandler(users *usecase.UserUsecase, orders *usecase.OrderUsecase) *UserHandler {
	return &UserHandler{users: users, orders: orders}
}

// GET /user/:id
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// PUT /user/:id
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	var req usecase.UpdateUserInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	user, err := h.users.UpdateUser(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// DELETE /user/:id
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.users.DeleteUser(c.Request().Context(), actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "User deleted successfully.")
}

// GET /user/:id/order
func (h *UserHandler) Orders(c echo.Context) error {
	out, err := h.orders.ListUserOrders(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
