package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// アップロード1ファイルの上限
const maxUploadBytes = 10 << 20

// /user のHTTP
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DIコンストラクタ
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// form でも JSON でも受ける
type signInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type signUpRequest struct {
	Email           string `json:"email" form:"email"`
	Username        string `json:"username" form:"username"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// トークンは返さない
type SessionResponse struct {
	User      *model.User `json:"user"`
	UserID    string      `json:"user_id"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
}

func toSessionResponse(s model.Session) SessionResponse {
	return SessionResponse{User: s.User, UserID: s.UserID, ExpiresAt: s.ExpiresAt}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, sessionGuard echo.MiddlewareFunc) {
	g := e.Group("/user")

	g.POST("/sign-in", h.signIn)
	g.POST("/sign-up", h.signUp)
	g.POST("/sign-out", h.signOut)
	g.GET("/me", h.me, sessionGuard)
}

func (h *AuthHandler) signIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s, err := h.uc.SignIn(c.Request().Context(), model.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toSessionResponse(s))
}

func (h *AuthHandler) signUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	files, err := readUploads(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid files"})
	}

	s, err := h.uc.SignUp(c.Request().Context(), model.SignUp{
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Files:           files,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toSessionResponse(s))
}

func (h *AuthHandler) signOut(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) me(c echo.Context) error {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, toSessionResponse(s))
}

// multipart の "files" を読む（multipart以外は無し）
func readUploads(c echo.Context) ([]model.UploadFile, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	var out []model.UploadFile
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		b, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, model.UploadFile{Filename: fh.Filename, Content: b})
	}
	return out, nil
}
