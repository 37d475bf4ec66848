package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// New はgatewayのechoを組み立てる
func New(logger *zap.Logger, h Handlers, sessions middleware.SessionLoader) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))

	RegisterRoutes(e, h, middleware.SessionGuard(sessions))
	return e
}

// Start は ctx が終わるまで待ち受けて、終わったら graceful shutdown する
func Start(ctx context.Context, e *echo.Echo, addr string, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("gateway listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("gateway shutting down")
	return e.Shutdown(shutdownCtx)
}
