package validator

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

// パスワード最低文字数
const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FieldErrors は項目名 -> メッセージ
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

// Err は1件もなければ nil
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	ok := errors.As(err, &fe)
	return fe, ok
}

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// サインインの入力を検証
func (v *authValidator) ValidateSignIn(ctx context.Context, c *model.Credentials) error {
	c.Email = strings.TrimSpace(c.Email)

	fe := FieldErrors{}
	checkEmail(fe, c.Email)
	checkPassword(fe, c.Password)
	return fe.Err()
}

// サインアップの入力を検証（username 未入力なら email の@より前）
func (v *authValidator) ValidateSignUp(ctx context.Context, s *model.SignUp) error {
	s.Email = strings.TrimSpace(s.Email)
	s.Username = strings.TrimSpace(s.Username)
	if s.Username == "" {
		if i := strings.Index(s.Email, "@"); i > 0 {
			s.Username = s.Email[:i]
		}
	}

	fe := FieldErrors{}
	checkEmail(fe, s.Email)
	checkPassword(fe, s.Password)
	if s.Username == "" {
		fe["username"] = "username is required"
	}
	if s.ConfirmPassword != s.Password {
		fe["confirm_password"] = "passwords do not match"
	}
	return fe.Err()
}

func checkEmail(fe FieldErrors, email string) {
	switch {
	case email == "":
		fe["email"] = "email is required"
	case !emailPattern.MatchString(email):
		fe["email"] = "invalid email address"
	}
}

func checkPassword(fe FieldErrors, password string) {
	switch {
	case password == "":
		fe["password"] = "password is required"
	case utf8.RuneCountInString(password) < minPasswordLen:
		fe["password"] = "password must be at least 6 characters"
	}
}
