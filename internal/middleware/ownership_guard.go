package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"shop/internal/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理者か、パスの:paramが自分のuuidなら通す
func SelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return reject(c, http.StatusUnauthorized, usecase.MsgInvalidToken)
			}
			if !p.IsSelfOrAdmin(c.Param(param)) {
				return reject(c, http.StatusForbidden, usecase.MsgForbidden)
			}
			return next(c)
		}
	}
}

// 注文の持ち主を引く
type OrderOwnerLookup interface {
	FindOwnerUUID(ctx context.Context, orderUUID string) (string, error)
}

// 管理者はそのまま、それ以外は注文の持ち主だけ通す
// 注文が無ければ404
func OrderOwnerOrAdmin(param string, orders OrderOwnerLookup, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return reject(c, http.StatusUnauthorized, usecase.MsgInvalidToken)
			}
			if p.IsAdmin {
				return next(c)
			}

			owner, err := orders.FindOwnerUUID(c.Request().Context(), c.Param(param))
			if errors.Is(err, repository.ErrNotFound) {
				return reject(c, http.StatusNotFound, usecase.MsgOrderNotFound)
			}
			if err != nil {
				logger.Error("order owner lookup failed", slog.Any("error", err))
				return reject(c, http.StatusInternalServerError, usecase.MsgServerError)
			}
			if owner != p.UserID {
				return reject(c, http.StatusForbidden, usecase.MsgForbidden)
			}
			return next(c)
		}
	}
}
