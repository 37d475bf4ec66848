package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// ユーザーサービス（/v1/user）への約束
type UserRepository interface {
	SignIn(ctx context.Context, c model.Credentials) (model.UserPassport, error)
	SignUp(ctx context.Context, s model.SignUp) (model.UserPassport, error)
}
