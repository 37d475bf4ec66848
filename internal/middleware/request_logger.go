package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const CtxRequestIDKey = "request_id"

// 1リクエスト1行のアクセスログ
// X-Request-ID が無ければ採番してレスポンスにも返す。
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set(CtxRequestIDKey, rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			err := next(c)
			if err != nil {
				//echoのエラーハンドラでレスポンスを確定させる
				c.Error(err)
			}

			fields := []zap.Field{
				zap.String("request_id", rid),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			switch s := c.Response().Status; {
			case s >= 500:
				logger.Error("request", fields...)
			case s >= 400:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}
