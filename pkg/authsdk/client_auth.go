package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates an inactive account and triggers an activation email.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, http.MethodPost, "/api/auth/register", req, http.StatusCreated)
}

// Login authenticates with a username or email. On success the session
// cookies are stored in the client's jar.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return call[LoginResponse](ctx, c, http.MethodPost, "/api/auth/login", req, http.StatusOK)
}

// Me returns the profile of the account behind the current access cookie.
func (c *Client) Me(ctx context.Context) (*UserProfile, error) {
	resp, err := call[MeResponse](ctx, c, http.MethodGet, "/api/auth/me", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Activate redeems an activation token.
func (c *Client) Activate(ctx context.Context, token string) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, http.MethodGet, "/api/auth/activate/"+url.PathEscape(token), nil, http.StatusOK)
}

// Refresh exchanges the refresh cookie for a new access cookie.
func (c *Client) Refresh(ctx context.Context) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, http.MethodPost, "/api/auth/refresh", nil, http.StatusOK)
}

// ForgotPassword requests a reset link. The response is identical whether
// or not the address belongs to an account.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, http.MethodPost, "/api/auth/forgot-password", ForgotPasswordRequest{Email: email}, http.StatusOK)
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, http.MethodPost, "/api/auth/reset-password/"+url.PathEscape(token), ResetPasswordRequest{Password: password}, http.StatusOK)
}

// Logout clears the session cookies.
func (c *Client) Logout(ctx context.Context) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, http.MethodPost, "/api/auth/logout", nil, http.StatusOK)
}
