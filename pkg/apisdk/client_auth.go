package apisdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Register creates a new account. The verification mail is dispatched by the
// server; the account cannot log in until the emailed link is followed.
func (c *Client) Register(
	ctx context.Context,
	email, password, subscription string,
) (*RegisterResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email:        email,
		Password:     password,
		Subscription: subscription,
	}, false)
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a session token and installs it on the
// client for subsequent authenticated calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	}, false)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Logout clears the server-side session and drops the local token.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, true)
	if err != nil {
		return err
	}
	if err := checkStatus(resp, http.StatusNoContent); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Current returns the authenticated user's profile.
func (c *Client) Current(ctx context.Context) (*UserPayload, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/auth/current", nil, true)
	if err != nil {
		return nil, err
	}

	var out UserPayload
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify confirms an account with the token from the verification mail.
func (c *Client) Verify(ctx context.Context, token string) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet,
		"/api/auth/verify/"+url.PathEscape(token), nil, false)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendVerification asks for the verification mail to be sent again.
func (c *Client) ResendVerification(ctx context.Context, email string) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/verify",
		ResendVerificationRequest{Email: email}, false)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSubscription changes the account's plan tier.
func (c *Client) UpdateSubscription(
	ctx context.Context,
	subscription string,
) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPatch, "/api/auth",
		UpdateSubscriptionRequest{Subscription: subscription}, true)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAvatar sends an image in the multipart field "avatar" and returns
// the URL of the processed 250x250 copy.
func (c *Client) UploadAvatar(
	ctx context.Context,
	filename string,
	image io.Reader,
) (*AvatarResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		c.url("/api/auth/avatars"), &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	var out AvatarResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
