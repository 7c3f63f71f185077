package apiclient

import (
	"context"
	"net/http"

	"warbler/internal/model"
)

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (model.User, error) {
	in := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{username, email, password}
	var out wireUser
	if err := c.do(ctx, "register", http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return model.User{}, err
	}
	return out.toModel(), nil
}

// Login exchanges credentials for an access token. The caller (the login
// view) hands the token plus the resolved user to the session store.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	in := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, "login", http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// CurrentUser resolves the profile the stored token belongs to.
func (c *HTTPClient) CurrentUser(ctx context.Context) (model.User, error) {
	var out wireUser
	if err := c.do(ctx, "current_user", http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return model.User{}, err
	}
	return out.toModel(), nil
}
