package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// アクセスログ（ステータスでレベルを変える）
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			req := c.Request()
			res := c.Response()

			fields := []slog.Attr{
				slog.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				slog.String("method", req.Method),
				slog.String("uri", req.URL.Path),
				slog.Int("status", res.Status),
				slog.Duration("latency", time.Since(start)),
				slog.String("remote_ip", c.RealIP()),
			}
			if req.URL.RawQuery != "" {
				fields = append(fields, slog.String("query", req.URL.RawQuery))
			}
			if err != nil {
				fields = append(fields, slog.Any("error", err))
			}

			level := slog.LevelInfo
			if res.Status >= 400 {
				level = slog.LevelWarn
			}
			if res.Status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(req.Context(), level, "http request", fields...)
			return err
		}
	}
}
