package api

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

const (
	signInPath = "user/sign-in"
	signUpPath = "user/sign-up"
)

// /v1/user のクライアント（multipart/form-data）
type UserClient struct {
	client *Client
}

var _ repository.UserRepository = (*UserClient)(nil)

// DI
func NewUserClient(c *Client) *UserClient {
	return &UserClient{client: c}
}

type passportEnvelope struct {
	Passport model.UserPassport `json:"passport"`
}

// SignIn は POST /v1/user/sign-in
func (u *UserClient) SignIn(ctx context.Context, c model.Credentials) (model.UserPassport, error) {
	var env passportEnvelope
	err := u.client.doMultipart(ctx, signInPath, []formField{
		{name: "email", value: c.Email},
		{name: "password", value: c.Password},
	}, nil, &env)
	if err != nil {
		return model.UserPassport{}, err
	}
	return env.Passport, nil
}

// SignUp は POST /v1/user/sign-up
func (u *UserClient) SignUp(ctx context.Context, s model.SignUp) (model.UserPassport, error) {
	var env passportEnvelope
	err := u.client.doMultipart(ctx, signUpPath, []formField{
		{name: "email", value: s.Email},
		{name: "username", value: s.Username},
		{name: "password", value: s.Password},
	}, s.Files, &env)
	if err != nil {
		return model.UserPassport{}, err
	}
	return env.Passport, nil
}
