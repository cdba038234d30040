package handler

import (
	"errors"
	"net/http"

	"shop/internal/usecase"
	auth "shop/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase // 会員登録usecase
	loginUC    *auth.LoginUsecase        // ログインusecase
}

// DIコンストラクタ
func NewAuthHandler(registerUC *auth.RegisterUserUsecase, loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{registerUC: registerUC, loginUC: loginUC}
}

// POST /user/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req auth.RegisterUserInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	out, err := h.registerUC.Execute(c.Request().Context(), req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// POST /user/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req auth.LoginInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	out, err := h.loginUC.Execute(c.Request().Context(), req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// usecaseのエラーをHTTPにする
func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, usecase.MsgInvalidRequest))
	case errors.Is(err, auth.ErrInvalidCredentials):
		//メールが無いのかパスワード違いなのかは教えない
		return writeError(c, usecase.NewHTTPError(http.StatusNotFound, usecase.MsgUserNotFound))
	case errors.Is(err, auth.ErrUsernameAlreadyExists):
		return writeError(c, usecase.NewHTTPError(http.StatusConflict, "The username is already registered."))
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return writeError(c, usecase.NewHTTPError(http.StatusConflict, "The email is already registered."))
	case errors.Is(err, auth.ErrUserAlreadyExists):
		return writeError(c, usecase.NewHTTPError(http.StatusConflict, "The username or email is already registered."))
	default:
		return writeError(c, err)
	}
}
