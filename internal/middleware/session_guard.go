package middleware

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"

	"github.com/labstack/echo/v4"
)

const (
	CtxSessionKey  = "session"   // model.Session
	CtxUserIDKey   = "user_id"   // string
	CtxUserRoleKey = "user_role" // model.Role
)

// SessionLoader はログイン中のセッションを返す（無ければ error）
type SessionLoader interface {
	Session(ctx context.Context) (model.Session, error)
}

// 端末に保存されたログイン情報が有効か確認するミドルウェア。
func SessionGuard(loader SessionLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := loader.Session(c.Request().Context())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxSessionKey, s)
			c.Set(CtxUserIDKey, s.UserID)
			if s.User != nil {
				c.Set(CtxUserRoleKey, s.User.Role)
			}

			return next(c)
		}
	}
}

// SessionFromContext は SessionGuard が保存したセッション
func SessionFromContext(c echo.Context) (model.Session, bool) {
	s, ok := c.Get(CtxSessionKey).(model.Session)
	return s, ok
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
