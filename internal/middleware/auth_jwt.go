package middleware

import (
	"net/http"
	"strings"

	"shop/internal/domain/model"
	"shop/internal/usecase"
	auth "shop/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// AuthJWTが入れる呼び出し元
const CtxPrincipalKey = "principal"

// bearerAuth用のJWT検証ミドルウェア。
func AuthJWT(verifier auth.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return reject(c, http.StatusUnauthorized, usecase.MsgInvalidToken)
			}

			//JWTをパースして検証する
			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return reject(c, http.StatusUnauthorized, usecase.MsgInvalidToken)
			}

			//contextへ保存
			c.Set(CtxPrincipalKey, model.Principal{
				UserID:       claims.UserID,
				IsAdmin:      claims.IsAdmin,
				TokenVersion: claims.TokenVersion,
			})
			return next(c)
		}
	}
}

// AuthJWTのあとで使う
func PrincipalFrom(c echo.Context) (model.Principal, bool) {
	p, ok := c.Get(CtxPrincipalKey).(model.Principal)
	if !ok || p.UserID == "" {
		return model.Principal{}, false
	}
	return p, true
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func reject(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorResponse{Error: msg, Status: status})
}
