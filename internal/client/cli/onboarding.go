package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibogaston/frontendchat/internal/client/auth"
	"github.com/taibogaston/frontendchat/internal/client/onboarding"
	"github.com/taibogaston/frontendchat/internal/validation"
)

func (a *App) onboardingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Complete your learner profile",
		Long: "Walks through four steps: languages, preferences, interests and country/age.\n" +
			"Type '<' at any prompt to go back one step.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOnboarding(cmd.Context())
		},
	}
	return protected(cmd, guardSession)
}

func (a *App) runOnboarding(ctx context.Context) error {
	if a.session.State().User.OnboardingCompleted {
		a.io.Println("Onboarding already completed.")
		a.io.Println(nextHint(auth.RouteChats))
		return nil
	}

	a.io.Println("=== Onboarding ===")
	w := onboarding.NewWizard()
	for {
		a.io.Printf("\n--- Step %d/%d ---\n", w.Step(), onboarding.LastStep)
		back, err := a.askStep(w)
		if err != nil {
			return fmt.Errorf("onboarding interrupted: %w", err)
		}
		if back {
			w.Back()
			continue
		}
		wasLast := w.IsLast()
		if err := w.Next(); err != nil {
			a.io.Printf("✗ %v\n", err)
			continue
		}
		if wasLast {
			break
		}
	}

	a.io.Println()
	a.io.Println("Saving profile...")
	res, err := a.onboarding.Complete(ctx, w.Profile())
	if err != nil {
		return err
	}
	a.io.Println("✓ Onboarding completed!")
	if res.DefaultChatID != "" {
		a.io.Printf("Your first chat is ready: run '%s messages %s'\n", AppName, res.DefaultChatID)
	}
	a.io.Println(nextHint(res.Next))
	return nil
}

// askStep fills the fields of the current wizard step
func (a *App) askStep(w *onboarding.Wizard) (back bool, err error) {
	p := w.Profile()
	switch w.Step() {
	case onboarding.StepLanguages:
		a.io.Println("Información básica")
		principal, back, err := a.choose("Idioma principal: ", onboarding.Languages, p.IdiomaPrincipal)
		if err != nil || back {
			return back, err
		}
		objetivo, back, err := a.choose("Idioma que quieres aprender: ", onboarding.Languages, p.IdiomaObjetivo)
		if err != nil || back {
			return back, err
		}
		w.SetLanguages(principal, objetivo)

	case onboarding.StepPreferences:
		a.io.Println("Preferencias")
		nivel, back, err := a.choose("Nivel actual: ", validation.Levels, p.NivelIdioma)
		if err != nil || back {
			return back, err
		}
		labels := make([]string, 0, len(onboarding.GenderOptions))
		current := ""
		for _, o := range onboarding.GenderOptions {
			labels = append(labels, o.Label)
			if o.Value == p.PreferenciaGenero {
				current = o.Label
			}
		}
		label, back, err := a.choose("Preferencia de género del compañero: ", labels, current)
		if err != nil || back {
			return back, err
		}
		genero := p.PreferenciaGenero
		if i := slices.Index(labels, label); i >= 0 {
			genero = onboarding.GenderOptions[i].Value
		}
		w.SetPreferences(nivel, genero)

	case onboarding.StepInterests:
		a.io.Println("Intereses (opcional): numbers separated by commas toggle a topic")
		for i, opt := range onboarding.Interests {
			mark := " "
			if slices.Contains(p.Intereses, opt) {
				mark = "x"
			}
			a.io.Printf("  [%s] %2d) %s\n", mark, i+1, opt)
		}
		input, err := a.io.ReadInput("Intereses: ")
		if err != nil {
			return false, err
		}
		if input == backInput {
			return true, nil
		}
		picked, unknown := pickMany(onboarding.Interests, input)
		for _, u := range unknown {
			a.io.Printf("Unknown interest %q ignored\n", u)
		}
		for _, interes := range picked {
			w.ToggleInterest(interes)
		}

	case onboarding.StepProfile:
		a.io.Println("Sobre ti")
		pais, back, err := a.choose("País: ", onboarding.Countries, p.Pais)
		if err != nil || back {
			return back, err
		}
		current := ""
		if p.Edad > 0 {
			current = strconv.Itoa(p.Edad)
		}
		input, err := a.io.ReadInput(fmt.Sprintf("Edad (%d-%d): ", validation.MinEdad, validation.MaxEdad))
		if err != nil {
			return false, err
		}
		if input == backInput {
			return true, nil
		}
		if input == "" {
			input = current
		}
		edad, _ := strconv.Atoi(strings.TrimSpace(input))
		w.SetProfile(pais, edad)
	}
	return false, nil
}
