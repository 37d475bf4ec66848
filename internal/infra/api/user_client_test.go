package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passportJSON = `{"passport":{"user":{"id":"u-1","email":"a@b.co","username":"a","role":"user"},"token":{"oauth_id":"","access_token":"at","refresh_token":"rt"}}}`

func TestSignIn_SendsMultipartFields(t *testing.T) {
	var email, password, path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		email = r.FormValue("email")
		password = r.FormValue("password")
		_, _ = w.Write([]byte(passportJSON))
	}))
	defer srv.Close()

	uc := api.NewUserClient(newClient(t, srv.URL, time.Second))

	p, err := uc.SignIn(context.Background(), model.Credentials{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "/v1/user/sign-in", path)
	assert.Equal(t, "a@b.co", email)
	assert.Equal(t, "secret1", password)
	assert.Equal(t, "u-1", p.User.ID)
	assert.Equal(t, "at", p.Token.AccessToken)
	assert.Equal(t, "rt", p.Token.RefreshToken)
}

func TestSignUp_SendsFiles(t *testing.T) {
	var username string
	var fileNames []string
	var firstContent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/user/sign-up", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		username = r.FormValue("username")
		for i, fh := range r.MultipartForm.File["files"] {
			fileNames = append(fileNames, fh.Filename)
			if i == 0 {
				f, err := fh.Open()
				if assert.NoError(t, err) {
					b, _ := io.ReadAll(f)
					firstContent = string(b)
					_ = f.Close()
				}
			}
		}
		_, _ = w.Write([]byte(passportJSON))
	}))
	defer srv.Close()

	uc := api.NewUserClient(newClient(t, srv.URL, time.Second))

	_, err := uc.SignUp(context.Background(), model.SignUp{
		Email:    "a@b.co",
		Username: "alice",
		Password: "secret1",
		Files: []model.UploadFile{
			{Filename: "avatar.png", Content: []byte("png")},
			{Filename: "cover.png", Content: []byte("cover")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", username)
	assert.Equal(t, []string{"avatar.png", "cover.png"}, fileNames)
	assert.Equal(t, "png", firstContent)
}

func TestSignIn_UnauthorizedIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	uc := api.NewUserClient(newClient(t, srv.URL, time.Second))

	_, err := uc.SignIn(context.Background(), model.Credentials{Email: "a@b.co", Password: "wrong12"})
	ae, ok := api.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, ae.Status())
}
