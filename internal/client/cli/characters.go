package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/taibogaston/frontendchat/internal/client/api"
	"github.com/taibogaston/frontendchat/internal/client/chat"
	"github.com/taibogaston/frontendchat/internal/models"
	"github.com/taibogaston/frontendchat/internal/validation"
)

var templateFuncs = template.FuncMap{"join": strings.Join}

func (a *App) charactersCommand() *cobra.Command {
	var (
		criteria    models.SearchCriteria
		recommended bool
		random      bool
	)
	cmd := &cobra.Command{
		Use:   "characters",
		Short: "Browse characters to talk with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if criteria.Genero != "" {
				if err := validation.ValidateCharacterGender(criteria.Genero); err != nil {
					return err
				}
			}
			if criteria.NivelEnsenanza != "" {
				if err := validation.ValidateNivel(criteria.NivelEnsenanza); err != nil {
					return err
				}
			}

			switch {
			case random:
				idioma := criteria.Idioma
				if idioma == "" {
					idioma = a.session.State().User.IdiomaObjetivo
				}
				c, err := a.catalog.Random(ctx, idioma)
				if err != nil {
					return err
				}
				return a.printCharacter(c)
			case recommended:
				list, err := a.catalog.Recommended(ctx, a.session.State().User)
				if err != nil {
					return err
				}
				a.printCharacters(list)
				return nil
			default:
				list, err := a.catalog.Browse(ctx, criteria)
				if err != nil {
					return err
				}
				a.printCharacters(list)
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&criteria.Idioma, "language", "", "target language, e.g. japonés")
	cmd.Flags().StringVar(&criteria.Nacionalidad, "nationality", "", "character nationality")
	cmd.Flags().StringVar(&criteria.Genero, "gender", "", "character gender: M or F")
	cmd.Flags().StringVar(&criteria.NivelEnsenanza, "level", "", "teaching level: principiante, intermedio, avanzado")
	cmd.Flags().IntVar(&criteria.EdadMin, "min-age", 0, "minimum character age")
	cmd.Flags().IntVar(&criteria.EdadMax, "max-age", 0, "maximum character age")
	cmd.Flags().BoolVar(&recommended, "recommended", false, "characters matching your profile")
	cmd.Flags().BoolVar(&random, "random", false, "pick one random character")
	cmd.MarkFlagsMutuallyExclusive("recommended", "random")

	cmd.AddCommand(a.characterShowCommand(), a.characterStatsCommand())
	return protected(cmd, guardOnboarding)
}

func (a *App) characterShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <characterID>",
		Short: "Show character details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog.Character(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printCharacter(c)
		},
		Annotations: map[string]string{annotationGuard: guardOnboarding},
	}
}

func (a *App) characterStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show character statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := a.catalog.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return template.Must(template.New("stats").Parse(statsTemplate)).Execute(a.io, stats)
		},
		Annotations: map[string]string{annotationGuard: guardOnboarding},
	}
}

func (a *App) openCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <characterID>",
		Short: "Open the chat with a character, creating it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOpen(cmd.Context(), args[0])
		},
	}
	return protected(cmd, guardOnboarding)
}

func (a *App) runOpen(ctx context.Context, characterID string) error {
	c, err := a.catalog.Character(ctx, characterID)
	if err != nil {
		return err
	}

	a.io.Printf("Opening chat with %s (%s)...\n", c.Nombre, c.Nacionalidad)
	res, err := a.resolver.Resolve(ctx, *c)
	switch {
	case errors.Is(err, chat.ErrDuplicateAction):
		a.io.Println("A chat with this character is already being created.")
		return nil
	case err != nil:
		return fmt.Errorf("no se pudo crear el chat: %s", displayMessage(err))
	}

	if res.Reused {
		a.io.Printf("✓ Existing chat: %s\n", res.ChatID)
	} else {
		a.io.Printf("✓ New chat created: %s\n", res.ChatID)
	}
	a.io.Printf("Run '%s send %s <message>' to talk.\n", AppName, res.ChatID)
	return nil
}

func (a *App) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <characterID> <message...>",
		Short: "Check whether a message fits the character's conversation rules",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.catalog.Check(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if res.IsValid {
				a.io.Println("✓ Message is appropriate")
				return nil
			}
			a.io.Println("✗ Message breaks the character rules:")
			for _, v := range res.Violations {
				a.io.Printf("  - %s\n", v)
			}
			return nil
		},
	}
	return protected(cmd, guardOnboarding)
}

func (a *App) printCharacters(list []models.Character) {
	if len(list) == 0 {
		a.io.Println("No characters found.")
		return
	}
	for _, c := range list {
		a.io.Printf("%-26s %s (%s) • %s\n", c.ID, c.Nombre, c.Nacionalidad, c.IdiomaObjetivo)
	}
	a.io.Println()
	a.io.Printf("Run '%s open <id>' to start talking.\n", AppName)
}

func (a *App) printCharacter(c *models.Character) error {
	tmpl := template.Must(template.New("character").Funcs(templateFuncs).Parse(characterTemplate))
	return tmpl.Execute(a.io, c)
}

// displayMessage returns the server text of an API error or the error itself
func displayMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
