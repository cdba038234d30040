package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"shop/internal/domain/model"
	"shop/internal/middleware"
	"shop/internal/usecase"
	"shop/internal/validator"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// 削除の成功
type MessageResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request().Context(), "request failed",
				slog.String("path", c.Path()), slog.Any("error", err))
		}
		return c.JSON(he.Status, ErrorResponse{Error: he.Message, Status: he.Status})
	}

	var ve *validator.Error
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message, Status: http.StatusBadRequest})
	}

	//500
	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("path", c.Path()), slog.Any("error", err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: usecase.MsgServerError, Status: http.StatusInternalServerError})
}

func writeMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: msg, Status: http.StatusOK})
}

// JSONが読めない
func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: usecase.MsgInvalidRequest, Status: http.StatusBadRequest})
}

// AuthJWTを通っていれば必ずある
func principal(c echo.Context) (model.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return model.Principal{}, usecase.NewHTTPError(http.StatusUnauthorized, usecase.MsgInvalidToken)
	}
	return p, nil
}
