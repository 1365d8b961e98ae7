package chat

import (
	"context"
	"fmt"

	"github.com/taibogaston/frontendchat/internal/models"
)

// CatalogAPI is the backend surface for browsing characters.
// *api.Client satisfies it.
type CatalogAPI interface {
	ListCharacters(ctx context.Context) ([]models.Character, error)
	CharactersByLanguage(ctx context.Context, idioma string) ([]models.Character, error)
	CharactersByNationality(ctx context.Context, nacionalidad string) ([]models.Character, error)
	SearchCharacters(ctx context.Context, criteria models.SearchCriteria) ([]models.Character, error)
	RecommendedCharacters(ctx context.Context, idioma, nacionalidad, genero string) ([]models.Character, error)
	RandomCharacter(ctx context.Context, idioma string) (*models.Character, error)
	GetCharacter(ctx context.Context, id string) (*models.Character, error)
	ValidateMessage(ctx context.Context, characterID, message string) (*models.ValidationResult, error)
	CharacterStats(ctx context.Context) (*models.CharacterStats, error)
}

// Catalog выбор персонажей для разговора
type Catalog struct {
	api CatalogAPI
}

// NewCatalog создает Catalog
func NewCatalog(catalogAPI CatalogAPI) *Catalog {
	return &Catalog{api: catalogAPI}
}

// Browse picks the narrowest endpoint for the criteria:
// everything when empty, by language or nationality when only that is set, search otherwise.
func (c *Catalog) Browse(ctx context.Context, criteria models.SearchCriteria) ([]models.Character, error) {
	var (
		list []models.Character
		err  error
	)
	switch {
	case criteria == (models.SearchCriteria{}):
		list, err = c.api.ListCharacters(ctx)
	case criteria == (models.SearchCriteria{Idioma: criteria.Idioma}):
		list, err = c.api.CharactersByLanguage(ctx, criteria.Idioma)
	case criteria == (models.SearchCriteria{Nacionalidad: criteria.Nacionalidad}):
		list, err = c.api.CharactersByNationality(ctx, criteria.Nacionalidad)
	default:
		list, err = c.api.SearchCharacters(ctx, criteria)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load characters: %w", err)
	}
	return list, nil
}

// Recommended returns characters matching the learner profile.
// Gender preference "A" means any gender and is not sent.
func (c *Catalog) Recommended(ctx context.Context, user *models.User) ([]models.Character, error) {
	if user == nil {
		return nil, fmt.Errorf("user is required for recommendations")
	}
	genero := user.PreferenciaGenero
	if genero == "A" {
		genero = ""
	}
	list, err := c.api.RecommendedCharacters(ctx, user.IdiomaObjetivo, "", genero)
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendations: %w", err)
	}
	return list, nil
}

// Random returns a random character speaking idioma.
func (c *Catalog) Random(ctx context.Context, idioma string) (*models.Character, error) {
	ch, err := c.api.RandomCharacter(ctx, idioma)
	if err != nil {
		return nil, fmt.Errorf("failed to get random character: %w", err)
	}
	return ch, nil
}

// Character returns a character by id.
func (c *Catalog) Character(ctx context.Context, id string) (*models.Character, error) {
	if id == "" {
		return nil, ErrEmptyCharacterID
	}
	ch, err := c.api.GetCharacter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return ch, nil
}

// Check asks the backend whether message fits the character restrictions.
func (c *Catalog) Check(ctx context.Context, characterID, message string) (*models.ValidationResult, error) {
	if characterID == "" {
		return nil, ErrEmptyCharacterID
	}
	res, err := c.api.ValidateMessage(ctx, characterID, message)
	if err != nil {
		return nil, fmt.Errorf("failed to validate message: %w", err)
	}
	return res, nil
}

// Stats returns aggregated character statistics.
func (c *Catalog) Stats(ctx context.Context) (*models.CharacterStats, error) {
	stats, err := c.api.CharacterStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get character stats: %w", err)
	}
	return stats, nil
}
