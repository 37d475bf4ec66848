package handler

import (
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /cartのHTTP
type CartHandler struct {
	store *usecase.CartStore
}

// DI
func NewCartHandler(store *usecase.CartStore) *CartHandler {
	return &CartHandler{store: store}
}

// POST /cart（商品一覧で持っている表示情報をそのまま送る）
type AddCartRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items []model.CartEntry `json:"items"`
	Total model.Price       `json:"total"`
	Count int               `json:"count"`
}

func toCartResponse(s model.CartState) CartResponse {
	items := s.Entries
	if items == nil {
		items = []model.CartEntry{}
	}
	return CartResponse{Items: items, Total: model.NewPrice(s.Total()), Count: s.Count()}
}

// /cart, /cart/{id} を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("", h.addToCart)
	g.PATCH("/:id", h.patchItem)
	g.DELETE("/:id", h.deleteItem)
	g.DELETE("", h.clear)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, toCartResponse(h.store.Snapshot()))
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if strings.TrimSpace(req.ID) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if req.Price.IsNegative() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
	}

	out := h.store.Add(c.Request().Context(), model.CartEntry{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       model.NewPrice(req.Price),
		Quantity:    req.Quantity,
	})
	return c.JSON(http.StatusOK, toCartResponse(out))
}

func (h *CartHandler) patchItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.store.UpdateQuantity(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toCartResponse(out))
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	out := h.store.Remove(c.Request().Context(), c.Param("id"))
	return c.JSON(http.StatusOK, toCartResponse(out))
}

func (h *CartHandler) clear(c echo.Context) error {
	out := h.store.Clear(c.Request().Context())
	return c.JSON(http.StatusOK, toCartResponse(out))
}
