package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibogaston/frontendchat/internal/models"
	"github.com/taibogaston/frontendchat/pkg/api"
)

// ConversationAPI is the backend surface for chats and messages.
// *api.Client satisfies it.
type ConversationAPI interface {
	ListChats(ctx context.Context) ([]models.Chat, error)
	GetChat(ctx context.Context, chatID string) (*models.Chat, error)
	CreateChat(ctx context.Context, partner models.Partner) (*models.Chat, error)
	DeactivateChat(ctx context.Context, chatID string) error
	ListMessages(ctx context.Context, chatID string) ([]models.Message, error)
	SendMessage(ctx context.Context, chatID string, sender models.Sender, content string) (*api.SendMessageResponse, error)
}

// SendResult ответ собеседника на сообщение пользователя
type SendResult struct {
	Sent    *models.Message
	Reply   *models.Message
	NewChat *models.Chat // backend предложил другого собеседника
}

// Conversation работает с историей и отправкой сообщений
type Conversation struct {
	api ConversationAPI
}

// NewConversation создает Conversation
func NewConversation(conversationAPI ConversationAPI) *Conversation {
	return &Conversation{api: conversationAPI}
}

// Chats returns the chats of the current user.
func (c *Conversation) Chats(ctx context.Context) ([]models.Chat, error) {
	chats, err := c.api.ListChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return chats, nil
}

// Chat returns a single chat.
func (c *Conversation) Chat(ctx context.Context, chatID string) (*models.Chat, error) {
	chat, err := c.api.GetChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat %s: %w", chatID, err)
	}
	return chat, nil
}

// Start creates a chat with an ad-hoc partner that is not in the character catalog.
func (c *Conversation) Start(ctx context.Context, partner models.Partner) (*models.Chat, error) {
	if partner.Nombre == "" {
		return nil, fmt.Errorf("partner nombre is required")
	}
	chat, err := c.api.CreateChat(ctx, partner)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}
	if chat.ID == "" {
		return nil, ErrEmptyChatID
	}
	return chat, nil
}

// History returns the messages of a chat in creation order.
func (c *Conversation) History(ctx context.Context, chatID string) ([]models.Message, error) {
	msgs, err := c.api.ListMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	models.SortMessages(msgs)
	return msgs, nil
}

// Send posts a user message and returns the reply.
func (c *Conversation) Send(ctx context.Context, chatID, content string) (SendResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return SendResult{}, ErrEmptyMessage
	}
	resp, err := c.api.SendMessage(ctx, chatID, models.SenderUser, content)
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to send message: %w", err)
	}
	return SendResult{
		Sent:    resp.UserMessage,
		Reply:   resp.Reply,
		NewChat: resp.NewChat,
	}, nil
}

// Deactivate closes a chat.
func (c *Conversation) Deactivate(ctx context.Context, chatID string) error {
	if err := c.api.DeactivateChat(ctx, chatID); err != nil {
		return fmt.Errorf("failed to deactivate chat: %w", err)
	}
	return nil
}
