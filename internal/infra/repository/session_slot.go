package repository

import (
	"context"
	"encoding/json"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// ログイン情報のkey
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	UserIDKey       = "user_id"
	UserKey         = "user"
)

var sessionKeys = []string{AccessTokenKey, RefreshTokenKey, UserIDKey, UserKey}

// スロット上のログイン情報
type SessionSlotRepository struct {
	slots repo.SlotRepository
}

var _ repo.SessionRepository = (*SessionSlotRepository)(nil)

// DI
func NewSessionSlotRepository(slots repo.SlotRepository) *SessionSlotRepository {
	return &SessionSlotRepository{slots: slots}
}

// サインイン/サインアップの結果を保存
func (r *SessionSlotRepository) Save(ctx context.Context, passport model.UserPassport) error {
	if r.slots == nil {
		return nil
	}

	//パスワードは保存しない
	user := passport.User
	user.Password = ""
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}

	values := map[string]string{
		AccessTokenKey:  passport.Token.AccessToken,
		RefreshTokenKey: passport.Token.RefreshToken,
		UserIDKey:       user.ID,
		UserKey:         string(userJSON),
	}

	var errs []error
	for _, k := range sessionKeys {
		if err := r.slots.Set(ctx, k, values[k]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// 無いkeyは空のまま返す
func (r *SessionSlotRepository) Load(ctx context.Context) (model.Session, error) {
	var s model.Session
	if r.slots == nil {
		return s, nil
	}

	var errs []error
	get := func(key string) string {
		v, err := r.slots.Get(ctx, key)
		if err != nil && !errors.Is(err, repo.ErrSlotNotFound) {
			errs = append(errs, err)
		}
		return v
	}

	s.AccessToken = get(AccessTokenKey)
	s.RefreshToken = get(RefreshTokenKey)
	s.UserID = get(UserIDKey)

	if raw := get(UserKey); raw != "" {
		var u model.User
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			s.User = &u
		}
	}

	return s, errors.Join(errs...)
}

// CustomerID は user_id（読めなければ空文字）
func (r *SessionSlotRepository) CustomerID(ctx context.Context) string {
	if r.slots == nil {
		return ""
	}
	v, err := r.slots.Get(ctx, UserIDKey)
	if err != nil {
		return ""
	}
	return v
}

// ログイン情報を全部消す
func (r *SessionSlotRepository) Clear(ctx context.Context) error {
	if r.slots == nil {
		return nil
	}

	var errs []error
	for _, k := range sessionKeys {
		if err := r.slots.Remove(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
