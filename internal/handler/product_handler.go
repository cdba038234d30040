package handler

import (
	"net/http"

	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品の参照（ログインしていれば誰でも）
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// GET /product?category=&query=
func (h *ProductHandler) List(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context(), repo.ProductListQuery{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("query"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GET /product/:id
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
