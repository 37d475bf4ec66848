package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /orders（ダッシュボード）
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, sessionGuard echo.MiddlewareFunc) {
	g := e.Group("/orders")
	g.Use(sessionGuard)

	g.GET("", h.list)
}

func (h *OrderHandler) list(c echo.Context) error {
	page, ok := intQuery(c, "page")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
	}
	perPage, ok := intQuery(c, "per_page")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid per_page"})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), model.OrderQuery{
		SearchWord: c.QueryParam("search_word"),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
