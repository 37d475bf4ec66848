package usecase

import (
	"errors"
	"fmt"
)

var (
	//400 数量が1未満
	ErrInvalidQuantity = errors.New("invalid quantity")
	//400 空のカートで注文
	ErrCartEmpty = errors.New("cart is empty")
	//409 注文処理が実行中
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	//注文の送信に失敗（原因は errors.As で取り出す）
	ErrCheckoutFailed = errors.New("checkout failed")
	//401 ログインしていない
	ErrUnauthorized = errors.New("unauthorized")
	//403 権限
	ErrForbidden = errors.New("forbidden")
)

// HTTPError はgatewayがそのまま返すエラー
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
