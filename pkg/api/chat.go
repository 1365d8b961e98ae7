package api

import "github.com/taibogaston/frontendchat/internal/models"

// OnboardingRequest профиль, собранный мастером onboarding
type OnboardingRequest struct {
	IdiomaPrincipal   string   `json:"idioma_principal"`
	IdiomaObjetivo    string   `json:"idioma_objetivo"`
	PreferenciaGenero string   `json:"preferencia_genero"`
	NivelIdioma       string   `json:"nivel_idioma"`
	Pais              string   `json:"pais"`
	Intereses         []string `json:"intereses"`
	Edad              int      `json:"edad"`
}

// OnboardingResponse ответ на завершение onboarding
type OnboardingResponse struct {
	User        *models.User `json:"user"`
	DefaultChat *models.Chat `json:"defaultChat,omitempty"`
}

// OnboardingStatusResponse состояние onboarding на сервере
type OnboardingStatusResponse struct {
	OnboardingCompleted bool `json:"onboardingCompleted"`
}

// CreateChatRequest создание чата с произвольным партнером
type CreateChatRequest struct {
	Partner models.Partner `json:"partner"`
}

// CreateChatWithCharacterResponse ответ на создание чата с персонажем
type CreateChatWithCharacterResponse struct {
	ChatID    string           `json:"chatId"`
	Character models.Character `json:"character"`
	Success   bool             `json:"success"`
}

// SendMessageRequest отправка сообщения в чат
type SendMessageRequest struct {
	Sender  models.Sender `json:"sender"`
	Content string        `json:"content"`
}

// SendMessageResponse ответ на отправку сообщения.
// NewChat заполняется, когда backend предлагает нового собеседника.
type SendMessageResponse struct {
	UserMessage *models.Message `json:"userMessage,omitempty"`
	Reply       *models.Message `json:"iaMessage,omitempty"`
	NewChat     *models.Chat    `json:"newChat,omitempty"`
}

// ValidateMessageRequest проверка сообщения на соответствие персонажу
type ValidateMessageRequest struct {
	Message string `json:"message"`
}
