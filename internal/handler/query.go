package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// 未指定なら0、数値でなければ ok=false
func intQuery(c echo.Context, name string) (int, bool) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
