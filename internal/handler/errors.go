package handler

import (
	"errors"
	"net/http"

	"storefront/internal/infra/api"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}
	if fe, ok := validator.AsFieldErrors(err); ok {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "invalid input", Fields: fe})
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity must be 1 or more"})
	case errors.Is(err, usecase.ErrCartEmpty):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart is empty"})
	case errors.Is(err, usecase.ErrCheckoutInProgress):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "checkout already in progress"})
	case errors.Is(err, usecase.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, usecase.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	//バックエンドのエラーはstatusをそのまま、通信失敗と読めない応答は502
	if ae, ok := api.AsAPIError(err); ok {
		if ae.IsTransport() || ae.Status() < http.StatusBadRequest {
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: ae.Message})
		}
		return c.JSON(ae.Status(), ErrorResponse{Error: ae.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
