package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// ログイン情報（access_token / refresh_token / user_id / user）の保存
type SessionRepository interface {
	Save(ctx context.Context, passport model.UserPassport) error
	Load(ctx context.Context) (model.Session, error)
	CustomerID(ctx context.Context) string
	Clear(ctx context.Context) error
}
