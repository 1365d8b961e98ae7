// Package onboarding collects the learner profile and completes onboarding on the backend.
package onboarding

import (
	"errors"
	"fmt"
	"slices"

	"github.com/taibogaston/frontendchat/internal/validation"
	"github.com/taibogaston/frontendchat/pkg/api"
)

// Шаги мастера
const (
	StepLanguages   = 1 // родной и изучаемый язык
	StepPreferences = 2 // уровень и пол собеседника
	StepInterests   = 3 // интересы, необязательно
	StepProfile     = 4 // страна и возраст

	FirstStep = StepLanguages
	LastStep  = StepProfile
)

// Значения по умолчанию для нового профиля
const (
	DefaultGenderPreference = "A"
	DefaultLevel            = "principiante"
)

// ErrStepIncomplete returned by Next when the current step does not validate
var ErrStepIncomplete = errors.New("step is incomplete")

// Wizard пошаговое заполнение профиля
type Wizard struct {
	profile api.OnboardingRequest
	step    int
}

// NewWizard создает мастер на первом шаге со значениями по умолчанию
func NewWizard() *Wizard {
	return &Wizard{
		step: FirstStep,
		profile: api.OnboardingRequest{
			PreferenciaGenero: DefaultGenderPreference,
			NivelIdioma:       DefaultLevel,
			Intereses:         []string{},
		},
	}
}

// Step returns the current step number.
func (w *Wizard) Step() int {
	return w.step
}

// IsLast reports whether the wizard is on its final step.
func (w *Wizard) IsLast() bool {
	return w.step == LastStep
}

// Next moves forward if the current step is valid. On the last step it stays in place.
func (w *Wizard) Next() error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.step < LastStep {
		w.step++
	}
	return nil
}

// Back moves one step back, never before the first step.
func (w *Wizard) Back() {
	if w.step > FirstStep {
		w.step--
	}
}

// Validate checks the fields of the current step.
func (w *Wizard) Validate() error {
	return w.validateStep(w.step)
}

// ValidateAll checks every step; used before submission.
func (w *Wizard) ValidateAll() error {
	for s := FirstStep; s <= LastStep; s++ {
		if err := w.validateStep(s); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wizard) validateStep(step int) error {
	p := w.profile
	switch step {
	case StepLanguages:
		if p.IdiomaPrincipal == "" || p.IdiomaObjetivo == "" {
			return fmt.Errorf("%w: selecciona idioma principal e idioma objetivo", ErrStepIncomplete)
		}
	case StepPreferences:
		if err := validation.ValidateNivel(p.NivelIdioma); err != nil {
			return fmt.Errorf("%w: %v", ErrStepIncomplete, err)
		}
		if err := validation.ValidateGenderPreference(p.PreferenciaGenero); err != nil {
			return fmt.Errorf("%w: %v", ErrStepIncomplete, err)
		}
	case StepInterests:
		// интересы необязательны
	case StepProfile:
		if p.Pais == "" {
			return fmt.Errorf("%w: selecciona tu país", ErrStepIncomplete)
		}
		if err := validation.ValidateEdad(p.Edad); err != nil {
			return fmt.Errorf("%w: %v", ErrStepIncomplete, err)
		}
	default:
		return fmt.Errorf("unknown step %d", step)
	}
	return nil
}

// SetLanguages sets native and target languages.
func (w *Wizard) SetLanguages(principal, objetivo string) {
	w.profile.IdiomaPrincipal = principal
	w.profile.IdiomaObjetivo = objetivo
}

// SetPreferences sets level and partner gender preference.
func (w *Wizard) SetPreferences(nivel, preferenciaGenero string) {
	w.profile.NivelIdioma = nivel
	w.profile.PreferenciaGenero = preferenciaGenero
}

// ToggleInterest adds the interest or removes it if already selected.
func (w *Wizard) ToggleInterest(interes string) {
	if i := slices.Index(w.profile.Intereses, interes); i >= 0 {
		w.profile.Intereses = slices.Delete(w.profile.Intereses, i, i+1)
		return
	}
	w.profile.Intereses = append(w.profile.Intereses, interes)
}

// SetProfile sets country and age.
func (w *Wizard) SetProfile(pais string, edad int) {
	w.profile.Pais = pais
	w.profile.Edad = edad
}

// Profile returns a copy of the collected profile.
func (w *Wizard) Profile() api.OnboardingRequest {
	p := w.profile
	p.Intereses = slices.Clone(w.profile.Intereses)
	return p
}
