package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/taibogaston/frontendchat/internal/models"
	"github.com/taibogaston/frontendchat/pkg/api"
)

// ListChats возвращает чаты текущего пользователя
func (c *Client) ListChats(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if err := c.doRequest(ctx, http.MethodGet, "/chats", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// GetChat возвращает чат по идентификатору
func (c *Client) GetChat(ctx context.Context, chatID string) (*models.Chat, error) {
	var chat models.Chat
	if err := c.doRequest(ctx, http.MethodGet, "/chats/"+url.PathEscape(chatID), nil, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// CreateChat создает чат с произвольным партнером
func (c *Client) CreateChat(ctx context.Context, partner models.Partner) (*models.Chat, error) {
	var chat models.Chat
	if err := c.doRequest(ctx, http.MethodPost, "/chats", api.CreateChatRequest{Partner: partner}, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// DeactivateChat помечает чат неактивным
func (c *Client) DeactivateChat(ctx context.Context, chatID string) error {
	return c.doRequest(ctx, http.MethodPatch, "/chats/"+url.PathEscape(chatID)+"/deactivate", nil, nil)
}

// ListMessages возвращает сообщения чата
func (c *Client) ListMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	var msgs []models.Message
	if err := c.doRequest(ctx, http.MethodGet, "/messages/"+url.PathEscape(chatID), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SendMessage отправляет сообщение в чат
func (c *Client) SendMessage(ctx context.Context, chatID string, sender models.Sender, content string) (*api.SendMessageResponse, error) {
	var resp api.SendMessageResponse
	req := api.SendMessageRequest{Sender: sender, Content: content}
	if err := c.doRequest(ctx, http.MethodPost, "/messages/"+url.PathEscape(chatID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
