package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"shop/internal/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// JWTのtvとDBのtoken_versionの一致するか確認。
// 削除済みユーザーのトークンもここで落ちる
func TokenVersionGuard(userRepo repository.UserRepository, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return reject(c, http.StatusUnauthorized, usecase.MsgInvalidToken)
			}

			//DBから最新のuserを取得する
			user, err := userRepo.FindByUUID(c.Request().Context(), p.UserID)
			if errors.Is(err, repository.ErrNotFound) || (err == nil && user == nil) {
				return reject(c, http.StatusUnauthorized, usecase.MsgInvalidToken)
			}
			if err != nil {
				logger.Error("token version lookup failed", slog.String("user_id", p.UserID), slog.Any("error", err))
				return reject(c, http.StatusInternalServerError, usecase.MsgServerError)
			}

			//token_version が一致しなければ強制ログアウト扱い（401）
			if user.TokenVersion != p.TokenVersion {
				return reject(c, http.StatusUnauthorized, usecase.MsgInvalidToken)
			}

			return next(c)
		}
	}
}
