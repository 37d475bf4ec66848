package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateSignIn(ctx context.Context, c *model.Credentials) error
	ValidateSignUp(ctx context.Context, s *model.SignUp) error
}

type AuthUsecase struct {
	users    repo.UserRepository
	sessions repo.SessionRepository
	v        AuthValidator
	logger   *zap.Logger
	now      func() time.Time
}

// DI
func NewAuthUsecase(
	users repo.UserRepository,
	sessions repo.SessionRepository,
	v AuthValidator,
	logger *zap.Logger,
) *AuthUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUsecase{
		users:    users,
		sessions: sessions,
		v:        v,
		logger:   logger,
		now:      time.Now,
	}
}

// SignIn はバックエンドで認証してログイン情報を保存する
func (u *AuthUsecase) SignIn(ctx context.Context, c model.Credentials) (model.Session, error) {
	if err := u.v.ValidateSignIn(ctx, &c); err != nil {
		return model.Session{}, err
	}

	passport, err := u.users.SignIn(ctx, c)
	if err != nil {
		return model.Session{}, err
	}
	return u.store(ctx, passport)
}

// SignUp は登録してそのままログイン状態にする
func (u *AuthUsecase) SignUp(ctx context.Context, s model.SignUp) (model.Session, error) {
	if err := u.v.ValidateSignUp(ctx, &s); err != nil {
		return model.Session{}, err
	}

	passport, err := u.users.SignUp(ctx, s)
	if err != nil {
		return model.Session{}, err
	}
	return u.store(ctx, passport)
}

func (u *AuthUsecase) store(ctx context.Context, p model.UserPassport) (model.Session, error) {
	if err := u.sessions.Save(ctx, p); err != nil {
		//保存できなくてもログイン自体は成功している
		u.logger.Warn("session persist failed", zap.Error(err))
	}

	user := p.User
	user.Password = ""
	s := model.Session{
		UserID:       user.ID,
		User:         &user,
		AccessToken:  p.Token.AccessToken,
		RefreshToken: p.Token.RefreshToken,
	}
	u.decorate(&s)
	return s, nil
}

// Session は保存済みのログイン情報（期限切れなら ErrUnauthorized）
func (u *AuthUsecase) Session(ctx context.Context) (model.Session, error) {
	s, err := u.sessions.Load(ctx)
	if err != nil {
		u.logger.Warn("session load failed", zap.Error(err))
	}
	u.decorate(&s)

	if !s.Active(u.now()) {
		return model.Session{}, ErrUnauthorized
	}
	return s, nil
}

// SignOut はログイン情報を消す（カートは残す）
func (u *AuthUsecase) SignOut(ctx context.Context) error {
	return u.sessions.Clear(ctx)
}

// access token の exp/sub を読む（署名は検証しない）
func (u *AuthUsecase) decorate(s *model.Session) {
	if s.AccessToken == "" {
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		//JWT以外のトークンも許す
		return
	}

	if exp, ok := claims["exp"].(float64); ok {
		t := time.Unix(int64(exp), 0)
		s.ExpiresAt = &t
	}
	if sub, ok := claims["sub"].(string); ok && s.UserID == "" {
		s.UserID = sub
	}
}

