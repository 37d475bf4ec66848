package server

import (
	"net/http"

	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
	Auth         *handler.AuthHandler
	Order        *handler.OrderHandler
}

// ルートをまとめて登録
func RegisterRoutes(e *echo.Echo, h Handlers, sessionGuard echo.MiddlewareFunc) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Cart.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e, sessionGuard)
	h.Order.RegisterRoutes(e, sessionGuard)
	h.AdminProduct.RegisterRoutes(e, sessionGuard)
}
