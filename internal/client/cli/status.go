package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/taibogaston/frontendchat/internal/client/api"
	"github.com/taibogaston/frontendchat/internal/client/auth"
	"github.com/taibogaston/frontendchat/internal/models"
	pkgapi "github.com/taibogaston/frontendchat/pkg/api"
)

// remoteStatus данные о сессии с сервера
type remoteStatus struct {
	user       *models.User
	onboarding *pkgapi.OnboardingStatusResponse
	chats      []models.Chat
}

func (a *App) statusCommand() *cobra.Command {
	var offline bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the saved session and what the server knows about it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runStatus(cmd.Context(), offline)
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "do not contact the server")
	return cmd
}

func (a *App) runStatus(ctx context.Context, offline bool) error {
	a.io.Println("=== Session Status ===")
	a.io.Println()
	a.io.Printf("Server: %s\n", a.client.BaseURL())

	state := a.session.State()
	if !state.Authenticated() {
		a.io.Println("Status: Not authenticated")
		a.io.Println()
		a.io.Println(nextHint(auth.RouteLogin))
		return nil
	}

	a.io.Println("Status: Authenticated")
	a.io.Printf("User: %s <%s>\n", state.User.Nombre, state.User.Email)
	a.io.Printf("Onboarding: %s\n", doneOrPending(state.User.OnboardingCompleted))
	a.printTokenInfo()

	if offline {
		return nil
	}

	a.io.Println()
	remote, err := a.fetchRemoteStatus(ctx)
	if err != nil {
		// Не прерываем выполнение, только предупреждаем
		a.io.Printf("Warning: %v\n", err)
		if api.IsUnauthorized(err) {
			a.io.Println("⚠️  The server rejected the saved token.")
			a.io.Println(nextHint(auth.RouteLogin))
		}
	}
	if remote.user != nil {
		if err := a.session.UpdateUser(ctx, models.PatchFromUser(remote.user)); err != nil {
			a.logger.Warn("failed to refresh local profile", "error", err)
		} else {
			a.io.Println("✓ Profile refreshed from server")
		}
	}
	if remote.onboarding != nil {
		a.io.Printf("Server onboarding: %s\n", doneOrPending(remote.onboarding.OnboardingCompleted))
	}
	if remote.chats != nil || err == nil {
		a.io.Printf("Chats: %d\n", len(remote.chats))
	}
	return nil
}

// fetchRemoteStatus запрашивает профиль, onboarding и чаты параллельно.
// Возвращает все полученные части и первую ошибку.
func (a *App) fetchRemoteStatus(ctx context.Context) (remoteStatus, error) {
	var (
		g   errgroup.Group
		res remoteStatus
	)
	g.Go(func() error {
		u, err := a.client.CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		res.user = u
		return nil
	})
	g.Go(func() error {
		st, err := a.client.OnboardingStatus(ctx)
		if err != nil {
			return fmt.Errorf("onboarding status: %w", err)
		}
		res.onboarding = st
		return nil
	})
	g.Go(func() error {
		chats, err := a.client.ListChats(ctx)
		if err != nil {
			return fmt.Errorf("chats: %w", err)
		}
		res.chats = chats
		return nil
	})
	err := g.Wait()
	return res, err
}

func (a *App) printTokenInfo() {
	claims, err := a.session.Claims()
	switch {
	case errors.Is(err, auth.ErrOpaqueToken):
		a.io.Println("Token: opaque (no expiry information)")
		return
	case err != nil:
		a.io.Printf("Token: unreadable (%v)\n", err)
		return
	}
	if claims.ExpiresAt.IsZero() {
		a.io.Println("Token: no expiry")
		return
	}
	a.io.Printf("Token expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
	if remaining := time.Until(claims.ExpiresAt); remaining > 0 {
		a.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		a.io.Println("⚠️  Token has expired. Please login again.")
	}
}

func doneOrPending(done bool) string {
	if done {
		return "completed"
	}
	return "pending"
}
