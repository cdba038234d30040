package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"shop/internal/config"
	"shop/internal/handler"
	"shop/internal/metrics"
	"shop/internal/middleware"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	pkgerrors "github.com/pkg/errors"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg    config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

func New(cfg config.Config, logger *slog.Logger, d Deps, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomw.Secure())
	e.Use(echomw.BodyLimit("1M"))
	e.Use(metrics.Middleware())
	e.Use(middleware.RequestLogger(logger))

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	if d.Logger == nil {
		d.Logger = logger
	}
	RegisterRoutes(e, cfg.Version, d, h)

	return &Server{cfg: cfg, logger: logger, echo: e}
}

// テストからhttptestで叩く用
func (s *Server) Handler() http.Handler {
	return s.echo
}

// ctxが終わるまで待ち、終わったらgracefulに止める
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort("", s.cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", slog.String("addr", addr), slog.String("version", s.cfg.Version))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- pkgerrors.Wrap(err, "failed to serve http")
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return pkgerrors.Wrap(err, "failed to shutdown http")
	}
	return <-errCh
}

// echo自体のエラー（404/405/ボディ上限など）も同じ形で返す
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := usecase.MsgServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if status < http.StatusInternalServerError {
				msg = http.StatusText(status)
			}
		} else {
			logger.Error("unhandled error", slog.String("path", c.Path()), slog.Any("error", err))
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, handler.ErrorResponse{Error: msg, Status: status})
	}
}
