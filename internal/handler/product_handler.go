package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
}

func (h *ProductHandler) list(c echo.Context) error {
	// page（default 1）
	page, ok := intQuery(c, "page")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
	}

	// per_page（default 12）
	perPage, ok := intQuery(c, "per_page")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid per_page"})
	}

	out, err := h.uc.Browse(c.Request().Context(), model.ProductQuery{
		SearchWord: c.QueryParam("search_word"),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
