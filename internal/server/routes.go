package server

import (
	"context"
	"log/slog"
	"net/http"

	"shop/internal/handler"
	"shop/internal/metrics"
	"shop/internal/middleware"
	"shop/internal/repository"
	auth "shop/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// ルーティングに必要な部品
type Deps struct {
	Verifier auth.TokenVerifier
	Users    repository.UserRepository
	Orders   middleware.OrderOwnerLookup
	Logger   *slog.Logger
	Ping     func(ctx context.Context) error // /healthz用（nilなら常にok）
}

type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	AdminUser    *handler.AdminUserHandler
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
	Order        *handler.OrderHandler
	AdminOrder   *handler.AdminOrderHandler
	Audit        *handler.AuditHandler
}

func RegisterRoutes(e *echo.Echo, version string, d Deps, h Handlers) {
	e.GET("/metrics", metrics.Handler())
	e.GET("/healthz", healthz(d.Ping))

	//トークン必須（期限・署名 → token_version）
	authed := func(extra ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
		mw := []echo.MiddlewareFunc{
			middleware.AuthJWT(d.Verifier),
			middleware.TokenVersionGuard(d.Users, d.Logger),
		}
		return append(mw, extra...)
	}
	admin := authed(middleware.AdminRoleGuard())
	selfOrAdmin := authed(middleware.SelfOrAdmin("id"))

	api := e.Group(version)

	// user
	api.POST("/user/register", h.Auth.Register)
	api.POST("/user/login", h.Auth.Login)
	api.GET("/user", h.AdminUser.List, admin...)
	api.GET("/user/:id", h.User.Get, selfOrAdmin...)
	api.PUT("/user/:id", h.User.Update, selfOrAdmin...)
	api.DELETE("/user/:id", h.User.Delete, selfOrAdmin...)
	api.GET("/user/:id/order", h.User.Orders, selfOrAdmin...)

	// product
	api.GET("/product", h.Product.List, authed()...)
	api.POST("/product/new", h.AdminProduct.Create, admin...)
	api.GET("/product/:id", h.Product.Get, authed()...)
	api.PUT("/product/:id", h.AdminProduct.Update, admin...)
	api.DELETE("/product/:id", h.AdminProduct.Delete, admin...)
	api.PUT("/product/image/:id", h.AdminProduct.UpdateImage, admin...)
	api.DELETE("/product/image/:id", h.AdminProduct.DeleteImage, admin...)

	// order
	api.GET("/order", h.AdminOrder.List, admin...)
	api.POST("/order/new", h.Order.Create, authed()...)
	api.GET("/order/:id", h.Order.Get, authed(middleware.OrderOwnerOrAdmin("id", d.Orders, d.Logger))...)
	api.PUT("/order/:id", h.AdminOrder.Update, admin...)
	api.DELETE("/order/:id", h.AdminOrder.Delete, admin...)
	api.PUT("/order/item/:id", h.AdminOrder.UpdateItem, admin...)
	api.DELETE("/order/item/:id", h.AdminOrder.DeleteItem, admin...)

	// audit
	api.GET("/audit", h.Audit.List, admin...)
}

func healthz(ping func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ping != nil {
			if err := ping(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
