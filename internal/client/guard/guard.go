// Package guard decides whether protected content may be shown for the current session.
package guard

import (
	"context"
	"fmt"

	"github.com/taibogaston/frontendchat/internal/client/auth"
)

// Decision результат проверки доступа
type Decision int

const (
	// Checking сессия еще восстанавливается, показывать нечего
	Checking Decision = iota
	RedirectLogin
	RedirectOnboarding
	Render
)

func (d Decision) String() string {
	switch d {
	case Checking:
		return "checking"
	case RedirectLogin:
		return "redirect-login"
	case RedirectOnboarding:
		return "redirect-onboarding"
	case Render:
		return "render"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// Route returns the redirect target or empty route for non-redirect decisions.
func (d Decision) Route() auth.Route {
	switch d {
	case RedirectLogin:
		return auth.RouteLogin
	case RedirectOnboarding:
		return auth.RouteOnboarding
	default:
		return ""
	}
}

// Requirement описывает, что нужно защищенному экрану
type Requirement struct {
	Onboarding bool // требуется завершенный onboarding
}

// Protected is the default requirement: session and completed onboarding.
var Protected = Requirement{Onboarding: true}

// SessionOnly requires a session but not onboarding, used by the onboarding flow itself.
var SessionOnly = Requirement{Onboarding: false}

// Evaluate maps a session state to a decision.
// Render is returned only for an authenticated session that satisfies req.
func Evaluate(state auth.State, req Requirement) Decision {
	switch {
	case state.Loading:
		return Checking
	case !state.Authenticated():
		return RedirectLogin
	case req.Onboarding && !state.User.OnboardingCompleted:
		return RedirectOnboarding
	default:
		return Render
	}
}

// RedirectError is returned by Enforce when the caller must go elsewhere.
type RedirectError struct {
	Route auth.Route
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("redirect to %s", e.Route)
}

// Session is the part of the session manager the guard observes.
// *auth.Manager satisfies it.
type Session interface {
	State() auth.State
	Subscribe() (<-chan auth.State, func())
}

// Guard применяет Evaluate к живой сессии
type Guard struct {
	session Session
}

// New создает guard поверх менеджера сессии
func New(session Session) *Guard {
	return &Guard{session: session}
}

// Wait blocks until hydration is over or ctx ends and returns a terminal decision.
func (g *Guard) Wait(ctx context.Context, req Requirement) (Decision, error) {
	// подписка до чтения состояния, чтобы не пропустить завершение hydrate
	ch, cancel := g.session.Subscribe()
	defer cancel()

	if d := Evaluate(g.session.State(), req); d != Checking {
		return d, nil
	}
	for {
		select {
		case <-ctx.Done():
			return Checking, ctx.Err()
		case s := <-ch:
			if d := Evaluate(s, req); d != Checking {
				return d, nil
			}
		}
	}
}

// Enforce returns nil when the content may be rendered and *RedirectError otherwise.
func (g *Guard) Enforce(ctx context.Context, req Requirement) error {
	d, err := g.Wait(ctx, req)
	if err != nil {
		return err
	}
	if d == Render {
		return nil
	}
	return &RedirectError{Route: d.Route()}
}
