package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /admin/products（ADMINのみ）
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type ProductCreateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryIDs []string        `json:"category_ids"`
}

// 管理者ルートを登録
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, sessionGuard echo.MiddlewareFunc) {
	g := e.Group("/admin")
	g.Use(sessionGuard)
	g.Use(middleware.AdminRoleGuard())

	g.POST("/products", h.createProduct)
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.AdminCreate(c.Request().Context(), usecase.AdminCreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}
