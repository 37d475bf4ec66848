package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// POST /checkout
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// どちらも省略可（省略時は設定値）
type CheckoutRequest struct {
	Contact string `json:"contact"`
	Address string `json:"address"`
}

type CheckoutResponse struct {
	Order      model.Order `json:"order"`
	RedirectTo string      `json:"redirect_to"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.checkout)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		Contact: req.Contact,
		Address: req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CheckoutResponse{Order: out.Order, RedirectTo: out.RedirectTo})
}
