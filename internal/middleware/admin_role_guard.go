package middleware

import (
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

//contextに入っているis_adminを確認します。

func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return reject(c, http.StatusUnauthorized, usecase.MsgInvalidToken)
			}

			//管理者だけ許可
			if !p.IsAdmin {
				return reject(c, http.StatusForbidden, usecase.MsgAdminRequired)
			}

			return next(c)
		}
	}
}
