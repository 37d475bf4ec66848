package model

import "time"

type Token struct {
	OauthID      string `json:"oauth_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// サインイン/サインアップのレスポンス
type UserPassport struct {
	User  User  `json:"user"`
	Token Token `json:"token"`
}

// 端末に保存されたログイン情報
type Session struct {
	UserID       string
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
}

// Active は access token があり期限切れでないか
func (s Session) Active(now time.Time) bool {
	if s.AccessToken == "" {
		return false
	}
	if s.ExpiresAt != nil && !now.Before(*s.ExpiresAt) {
		return false
	}
	return true
}
