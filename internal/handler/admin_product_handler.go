package handler

import (
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理者の商品・画像操作
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// POST /product/new
func (h *AdminProductHandler) Create(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// PUT /product/:id
func (h *AdminProductHandler) Update(c echo.Context) error {
	var req usecase.UpdateProductInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// DELETE /product/:id
func (h *AdminProductHandler) Delete(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "Product deleted successfully.")
}

// PUT /product/image/:id
func (h *AdminProductHandler) UpdateImage(c echo.Context) error {
	var req usecase.UpdateImageInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	img, err := h.uc.UpdateImage(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, img)
}

// DELETE /product/image/:id
func (h *AdminProductHandler) DeleteImage(c echo.Context) error {
	if err := h.uc.DeleteImage(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "Image deleted successfully.")
}
