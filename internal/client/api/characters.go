package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/taibogaston/frontendchat/internal/models"
	"github.com/taibogaston/frontendchat/pkg/api"
)

// ListCharacters возвращает всех активных персонажей
func (c *Client) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return c.characters(ctx, http.MethodGet, "/characters", nil)
}

// GetCharacter возвращает персонажа по идентификатору
func (c *Client) GetCharacter(ctx context.Context, id string) (*models.Character, error) {
	var ch models.Character
	if err := c.doRequest(ctx, http.MethodGet, "/characters/"+url.PathEscape(id), nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// CharactersByLanguage возвращает персонажей по изучаемому языку
func (c *Client) CharactersByLanguage(ctx context.Context, idioma string) ([]models.Character, error) {
	return c.characters(ctx, http.MethodGet, "/characters/language/"+url.PathEscape(idioma), nil)
}

// CharactersByNationality возвращает персонажей по национальности
func (c *Client) CharactersByNationality(ctx context.Context, nacionalidad string) ([]models.Character, error) {
	return c.characters(ctx, http.MethodGet, "/characters/nationality/"+url.PathEscape(nacionalidad), nil)
}

// SearchCharacters ищет персонажей по критериям
func (c *Client) SearchCharacters(ctx context.Context, criteria models.SearchCriteria) ([]models.Character, error) {
	return c.characters(ctx, http.MethodPost, "/characters/search", criteria)
}

// RecommendedCharacters возвращает рекомендованных персонажей; пустые параметры не передаются
func (c *Client) RecommendedCharacters(ctx context.Context, idioma, nacionalidad, genero string) ([]models.Character, error) {
	q := url.Values{}
	if idioma != "" {
		q.Set("idioma_objetivo", idioma)
	}
	if nacionalidad != "" {
		q.Set("nacionalidad", nacionalidad)
	}
	if genero != "" {
		q.Set("genero", genero)
	}

	path := "/characters/recommended"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.characters(ctx, http.MethodGet, path, nil)
}

// RandomCharacter возвращает случайного персонажа для языка
func (c *Client) RandomCharacter(ctx context.Context, idioma string) (*models.Character, error) {
	var ch models.Character
	if err := c.doRequest(ctx, http.MethodGet, "/characters/random/"+url.PathEscape(idioma), nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// CreateChatWithCharacter создает чат с выбранным персонажем
func (c *Client) CreateChatWithCharacter(ctx context.Context, characterID string) (*api.CreateChatWithCharacterResponse, error) {
	var resp api.CreateChatWithCharacterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/characters/"+url.PathEscape(characterID)+"/chat", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidateMessage проверяет сообщение на соответствие персонажу
func (c *Client) ValidateMessage(ctx context.Context, characterID, message string) (*models.ValidationResult, error) {
	var res models.ValidationResult
	req := api.ValidateMessageRequest{Message: message}
	if err := c.doRequest(ctx, http.MethodPost, "/characters/"+url.PathEscape(characterID)+"/validate", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CharacterStats возвращает статистику по персонажам
func (c *Client) CharacterStats(ctx context.Context) (*models.CharacterStats, error) {
	var stats models.CharacterStats
	if err := c.doRequest(ctx, http.MethodGet, "/characters/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) characters(ctx context.Context, method, path string, body any) ([]models.Character, error) {
	var list []models.Character
	if err := c.doRequest(ctx, method, path, body, &list); err != nil {
		return nil, err
	}
	return list, nil
}
