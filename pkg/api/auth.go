package api

import "github.com/taibogaston/frontendchat/internal/models"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse представляет ответ на успешную регистрацию.
// Сессия не создается: нужна верификация email.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ с токеном доступа
type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// VerifyEmailResponse ответ на верификацию email; token и user присутствуют при успехе
type VerifyEmailResponse struct {
	User    *models.User `json:"user,omitempty"`
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
}

// EmailRequest используется для forgot-password и resend-verification
type EmailRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest запрос на смену пароля по токену из письма
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse общий ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
