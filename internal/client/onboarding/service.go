package onboarding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibogaston/frontendchat/internal/client/auth"
	"github.com/taibogaston/frontendchat/internal/models"
	"github.com/taibogaston/frontendchat/pkg/api"
)

// API is the backend surface of onboarding. *api.Client satisfies it.
type API interface {
	CompleteOnboarding(ctx context.Context, req api.OnboardingRequest) (*api.OnboardingResponse, error)
}

// Session is the part of the session manager onboarding updates.
// *auth.Manager satisfies it.
type Session interface {
	State() auth.State
	UpdateUser(ctx context.Context, patch models.UserPatch) error
}

// Result итог onboarding
type Result struct {
	User          *models.User
	DefaultChatID string // чат, созданный backend по профилю, если есть
	Next          auth.Route
}

// Service завершает onboarding на backend и обновляет сессию
type Service struct {
	api     API
	session Session
	logger  *slog.Logger
}

// NewService создает Service
func NewService(onboardingAPI API, session Session, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{api: onboardingAPI, session: session, logger: logger}
}

// Complete posts the profile and marks onboarding completed in the session.
// The backend user fields are merged into the local user.
func (s *Service) Complete(ctx context.Context, profile api.OnboardingRequest) (*Result, error) {
	if !s.session.State().Authenticated() {
		return nil, auth.ErrNotAuthenticated
	}

	resp, err := s.api.CompleteOnboarding(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to complete onboarding: %w", err)
	}

	patch := patchFromProfile(profile)
	if resp.User != nil {
		patch = mergePatch(patch, models.PatchFromUser(resp.User))
	}
	completed := true
	patch.OnboardingCompleted = &completed
	if err := s.session.UpdateUser(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update session user: %w", err)
	}

	res := &Result{User: s.session.State().User, Next: auth.RouteChats}
	if resp.DefaultChat != nil {
		res.DefaultChatID = resp.DefaultChat.ID
	}
	s.logger.Debug("onboarding completed", "default_chat", res.DefaultChatID)
	return res, nil
}

func patchFromProfile(p api.OnboardingRequest) models.UserPatch {
	return models.PatchFromUser(&models.User{
		IdiomaPrincipal:   p.IdiomaPrincipal,
		IdiomaObjetivo:    p.IdiomaObjetivo,
		NivelIdioma:       p.NivelIdioma,
		PreferenciaGenero: p.PreferenciaGenero,
		Intereses:         p.Intereses,
		Pais:              p.Pais,
		Edad:              p.Edad,
	})
}

// mergePatch returns base with every field set in over taking precedence
func mergePatch(base, over models.UserPatch) models.UserPatch {
	pick := func(a, b *string) *string {
		if b != nil {
			return b
		}
		return a
	}
	out := base
	out.Nombre = pick(base.Nombre, over.Nombre)
	out.Email = pick(base.Email, over.Email)
	out.IdiomaPrincipal = pick(base.IdiomaPrincipal, over.IdiomaPrincipal)
	out.IdiomaObjetivo = pick(base.IdiomaObjetivo, over.IdiomaObjetivo)
	out.NivelIdioma = pick(base.NivelIdioma, over.NivelIdioma)
	out.Pais = pick(base.Pais, over.Pais)
	out.PreferenciaGenero = pick(base.PreferenciaGenero, over.PreferenciaGenero)
	if over.Intereses != nil {
		out.Intereses = over.Intereses
	}
	if over.Edad != nil {
		out.Edad = over.Edad
	}
	if over.EmailVerified != nil {
		out.EmailVerified = over.EmailVerified
	}
	if over.OnboardingCompleted != nil {
		out.OnboardingCompleted = over.OnboardingCompleted
	}
	return out
}
