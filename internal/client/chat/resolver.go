// Package chat opens conversations with characters and exchanges messages in them.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibogaston/frontendchat/internal/models"
	"github.com/taibogaston/frontendchat/pkg/api"
)

// ResolverAPI is the backend surface used to find or create a chat.
// *api.Client satisfies it.
type ResolverAPI interface {
	ListChats(ctx context.Context) ([]models.Chat, error)
	CreateChatWithCharacter(ctx context.Context, characterID string) (*api.CreateChatWithCharacterResponse, error)
}

// Resolution результат выбора персонажа
type Resolution struct {
	ChatID string
	Reused bool // найден существующий чат, новый не создавался
}

// Resolver находит чат с персонажем или создает новый.
// Одновременно для одного персонажа выполняется не больше одного Resolve.
type Resolver struct {
	api    ResolverAPI
	logger *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewResolver создает Resolver
func NewResolver(resolverAPI ResolverAPI, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		api:      resolverAPI,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Resolve returns the chat to open for character.
// An existing chat whose partner has the same (nombre, nacionalidad) is reused;
// otherwise a new chat is created. A failed chat listing is treated as an empty one.
// A call for a character that is already being resolved returns ErrDuplicateAction
// without touching the backend.
func (r *Resolver) Resolve(ctx context.Context, character models.Character) (Resolution, error) {
	if character.ID == "" {
		return Resolution{}, ErrEmptyCharacterID
	}
	if !r.acquire(character.ID) {
		return Resolution{}, ErrDuplicateAction
	}
	defer r.release(character.ID)

	if chat, ok := r.findExisting(ctx, character); ok {
		r.logger.Debug("reusing chat", "chat_id", chat.ID, "character_id", character.ID)
		return Resolution{ChatID: chat.ID, Reused: true}, nil
	}

	resp, err := r.api.CreateChatWithCharacter(ctx, character.ID)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to create chat: %w", err)
	}
	if resp == nil || resp.ChatID == "" {
		return Resolution{}, ErrEmptyChatID
	}
	r.logger.Debug("chat created", "chat_id", resp.ChatID, "character_id", character.ID)
	return Resolution{ChatID: resp.ChatID}, nil
}

// InFlight reports whether a Resolve for the character is running.
func (r *Resolver) InFlight(characterID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.inFlight[characterID]
	return ok
}

func (r *Resolver) findExisting(ctx context.Context, character models.Character) (models.Chat, bool) {
	chats, err := r.api.ListChats(ctx)
	if err != nil {
		r.logger.Warn("failed to list chats, creating a new one", "error", err)
		return models.Chat{}, false
	}
	want := character.Identity()
	for _, c := range chats {
		// первый совпавший по (nombre, nacionalidad)
		if c.Partner.Identity() == want {
			return c, true
		}
	}
	return models.Chat{}, false
}

func (r *Resolver) acquire(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.inFlight[key]; busy {
		return false
	}
	r.inFlight[key] = struct{}{}
	return true
}

func (r *Resolver) release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inFlight, key)
}
