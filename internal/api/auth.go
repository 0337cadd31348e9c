package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

// Auth endpoints carry the API key header only, never a bearer token, and
// are excluded from both the proactive and the reactive refresh paths.
const (
	tokenPath   = "/auth/v1/token"
	signupPath  = "/auth/v1/signup"
	recoverPath = "/auth/v1/recover"
)

// SignIn exchanges credentials for a token pair.
func (c *Client) SignIn(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
	params := url.Values{}
	params.Set("grant_type", "password")

	req := pkgapi.PasswordGrantRequest{Email: email, Password: password}
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, tokenPath, params, req, &resp, false); err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}
	return &resp, nil
}

// SignUp registers a new user and returns the initial token pair.
func (c *Client) SignUp(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
	req := pkgapi.SignUpRequest{Email: email, Password: password}
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, signupPath, nil, req, &resp, false); err != nil {
		return nil, fmt.Errorf("sign up failed: %w", err)
	}
	return &resp, nil
}

// RefreshToken exchanges a refresh token for a fresh token pair.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error) {
	params := url.Values{}
	params.Set("grant_type", "refresh_token")

	req := pkgapi.RefreshGrantRequest{RefreshToken: refreshToken}
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, tokenPath, params, req, &resp, false); err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}
	return &resp, nil
}

// RecoverPassword triggers a password-recovery email.
func (c *Client) RecoverPassword(ctx context.Context, email string) error {
	req := pkgapi.RecoverRequest{Email: email}
	if err := c.doRequest(ctx, http.MethodPost, recoverPath, nil, req, nil, false); err != nil {
		return fmt.Errorf("password recovery failed: %w", err)
	}
	return nil
}
