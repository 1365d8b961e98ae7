package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/taibogaston/frontendchat/internal/models"
	"github.com/taibogaston/frontendchat/internal/validation"
)

func (a *App) preferencesCommand() *cobra.Command {
	var level, gender, language string
	cmd := &cobra.Command{
		Use:   "preferences",
		Short: "Update learning preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs := map[string]any{}
			if cmd.Flags().Changed("level") {
				if err := validation.ValidateNivel(level); err != nil {
					return err
				}
				prefs["nivel_idioma"] = level
			}
			if cmd.Flags().Changed("gender") {
				if err := validation.ValidateGenderPreference(gender); err != nil {
					return err
				}
				prefs["preferencia_genero"] = gender
			}
			if cmd.Flags().Changed("language") {
				if language == "" {
					return errors.New("target language must not be empty")
				}
				prefs["idioma_objetivo"] = language
			}
			if len(prefs) == 0 {
				return errors.New("nothing to update: use --level, --gender or --language")
			}

			ctx := cmd.Context()
			user, err := a.client.UpdatePreferences(ctx, prefs)
			if err != nil {
				return err
			}
			if err := a.session.UpdateUser(ctx, models.PatchFromUser(user)); err != nil {
				return err
			}
			a.io.Println("✓ Preferences updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "language level: principiante, intermedio, avanzado")
	cmd.Flags().StringVar(&gender, "gender", "", "partner gender preference: A, F or M")
	cmd.Flags().StringVar(&language, "language", "", "target language")
	return protected(cmd, guardOnboarding)
}
