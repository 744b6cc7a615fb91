package api

import (
	"context"
	"net/http"
)

// ResendOtpSentinel is the value the backend treats as "send me a new code"
// on the verify-otp endpoint
const ResendOtpSentinel = "resend"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

type OtpResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Register creates an account. The backend sends an OTP to the supplied email,
// which must be verified before the account can log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, newValidationError("name, email and password are required")
	}

	var out RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/register", req, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates a user. On success the returned token is stored in the
// session so subsequent authenticated calls carry it.
func (c *Client) Login(ctx context.Context, email string, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, newValidationError("email and password are required")
	}

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", body, false, &out); err != nil {
		return nil, err
	}

	if out.Token != "" {
		if err := c.SetAuthToken(out.Token); err != nil {
			return nil, newInternalError(err, "storing auth token")
		}
	}

	return &out, nil
}

// Logout clears the stored session state
func (c *Client) Logout() error {
	if err := c.RemoveAuthToken(); err != nil {
		return newInternalError(err, "clearing auth token")
	}
	return nil
}

// VerifyOtp confirms the one-time code sent at registration. When the backend
// responds with a token it is stored in the session.
func (c *Client) VerifyOtp(ctx context.Context, email string, otp string) (*OtpResponse, error) {
	if email == "" || otp == "" {
		return nil, newValidationError("email and otp are required")
	}

	body := struct {
		Email string `json:"email"`
		Otp   string `json:"otp"`
	}{email, otp}

	var out OtpResponse
	if err := c.doJSON(ctx, http.MethodPost, "/verify-otp", body, false, &out); err != nil {
		return nil, err
	}

	if out.Token != "" {
		if err := c.SetAuthToken(out.Token); err != nil {
			return nil, newInternalError(err, "storing auth token")
		}
	}

	return &out, nil
}

// ResendOtp asks the backend for a fresh code. The endpoint is the verify-otp
// endpoint called with the resend sentinel value.
func (c *Client) ResendOtp(ctx context.Context, email string) (*OtpResponse, error) {
	return c.VerifyOtp(ctx, email, ResendOtpSentinel)
}

// ForgotPassword starts the password reset flow for the supplied email
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	if email == "" {
		return nil, newValidationError("email is required")
	}

	body := struct {
		Email string `json:"email"`
	}{email}

	var out MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/forgot-password", body, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOtpPassword confirms the reset code sent by ForgotPassword
func (c *Client) VerifyOtpPassword(ctx context.Context, email string, otp string) (*MessageResponse, error) {
	if email == "" || otp == "" {
		return nil, newValidationError("email and otp are required")
	}

	body := struct {
		Email string `json:"email"`
		Otp   string `json:"otp"`
	}{email, otp}

	var out MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/verify-otp", body, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetNewPassword completes the password reset flow
func (c *Client) SetNewPassword(ctx context.Context, email string, password string) (*MessageResponse, error) {
	if email == "" || password == "" {
		return nil, newValidationError("email and password are required")
	}

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/set-password", body, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
