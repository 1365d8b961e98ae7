package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/taibogaston/frontendchat/internal/models"
	"github.com/taibogaston/frontendchat/pkg/api"
)

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	req := api.LoginRequest{Email: email, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, nombre, email, password string) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	req := api.RegisterRequest{Nombre: nombre, Email: email, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyEmail подтверждает email по токену из письма
func (c *Client) VerifyEmail(ctx context.Context, token string) (*api.VerifyEmailResponse, error) {
	var resp api.VerifyEmailResponse
	if err := c.doRequest(ctx, http.MethodGet, "/auth/verify/"+url.PathEscape(token), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword запрашивает письмо для сброса пароля
func (c *Client) ForgotPassword(ctx context.Context, email string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/forgot-password", api.EmailRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword устанавливает новый пароль по токену сброса
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	req := api.ResetPasswordRequest{Token: token, NewPassword: newPassword}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/reset-password", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResendVerification повторно отправляет письмо верификации
func (c *Client) ResendVerification(ctx context.Context, email string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/resend-verification", api.EmailRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser возвращает профиль текущего пользователя
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePreferences частично обновляет предпочтения пользователя
func (c *Client) UpdatePreferences(ctx context.Context, preferences map[string]any) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodPatch, "/users/preferences", preferences, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CompleteOnboarding отправляет профиль, собранный мастером onboarding
func (c *Client) CompleteOnboarding(ctx context.Context, req api.OnboardingRequest) (*api.OnboardingResponse, error) {
	var resp api.OnboardingResponse
	if err := c.doRequest(ctx, http.MethodPost, "/onboarding/complete", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OnboardingStatus возвращает состояние onboarding на сервере
func (c *Client) OnboardingStatus(ctx context.Context) (*api.OnboardingStatusResponse, error) {
	var resp api.OnboardingStatusResponse
	if err := c.doRequest(ctx, http.MethodGet, "/onboarding/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
