package guard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibogaston/frontendchat/internal/client/api"
	"github.com/taibogaston/frontendchat/internal/client/auth"
	"github.com/taibogaston/frontendchat/internal/client/storage/boltdb"
	"github.com/taibogaston/frontendchat/internal/models"
)

func newManager(t *testing.T, authAPI auth.AuthAPI) *auth.Manager {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return auth.NewManager(store, authAPI)
}

func TestEvaluate_TruthTable(t *testing.T) {
	for _, loading := range []bool{false, true} {
		for _, authenticated := range []bool{false, true} {
			for _, required := range []bool{false, true} {
				for _, completed := range []bool{false, true} {
					state := auth.State{Loading: loading}
					if authenticated {
						state.Token = "tok"
						state.User = &models.User{ID: "1", OnboardingCompleted: completed}
					}

					d := Evaluate(state, Requirement{Onboarding: required})

					switch {
					case loading:
						assert.Equal(t, Checking, d)
					case authenticated && (!required || completed):
						assert.Equal(t, Render, d)
						assert.Empty(t, d.Route())
					default:
						// ровно один из двух редиректов
						require.Contains(t, []Decision{RedirectLogin, RedirectOnboarding}, d)
						assert.NotEmpty(t, d.Route())
						if !authenticated {
							assert.Equal(t, auth.RouteLogin, d.Route())
						} else {
							assert.Equal(t, auth.RouteOnboarding, d.Route())
						}
					}
				}
			}
		}
	}
}

func TestEvaluate_TokenWithoutUser(t *testing.T) {
	assert.Equal(t, RedirectLogin, Evaluate(auth.State{Token: "tok"}, Protected))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "redirect-onboarding", RedirectOnboarding.String())
	assert.Equal(t, "decision(42)", Decision(42).String())
}

func TestGuard_WaitBlocksUntilHydrated(t *testing.T) {
	m := newManager(t, nil)
	g := New(m)

	result := make(chan Decision, 1)
	go func() {
		d, err := g.Wait(context.Background(), Protected)
		assert.NoError(t, err)
		result <- d
	}()

	select {
	case d := <-result:
		t.Fatalf("decision %s before hydration", d)
	case <-time.After(50 * time.Millisecond):
	}

	m.Hydrate(context.Background())

	select {
	case d := <-result:
		assert.Equal(t, RedirectLogin, d)
	case <-time.After(time.Second):
		t.Fatal("guard did not resolve after hydration")
	}
}

func TestGuard_WaitContextCanceled(t *testing.T) {
	g := New(newManager(t, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	d, err := g.Wait(ctx, Protected)

	assert.Equal(t, Checking, d)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGuard_Enforce(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, nil)
	m.Hydrate(ctx)
	g := New(m)

	var redirect *RedirectError
	require.ErrorAs(t, g.Enforce(ctx, SessionOnly), &redirect)
	assert.Equal(t, auth.RouteLogin, redirect.Route)

	require.NoError(t, m.SetAuthData(ctx, "tok", &models.User{ID: "1"}))
	assert.NoError(t, g.Enforce(ctx, SessionOnly))
	require.ErrorAs(t, g.Enforce(ctx, Protected), &redirect)
	assert.Equal(t, auth.RouteOnboarding, redirect.Route)

	done := true
	require.NoError(t, m.UpdateUser(ctx, models.UserPatch{OnboardingCompleted: &done}))
	assert.NoError(t, g.Enforce(ctx, Protected))
}

// TestGuard_LoginWithoutOnboarding воспроизводит сценарий: login → сессия → редирект на onboarding
func TestGuard_LoginWithoutOnboarding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc123","user":{"id":"1","nombre":"Ana","email":"a@b.com","onboardingCompleted":false}}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	m := newManager(t, api.NewClient(srv.URL))
	m.Hydrate(ctx)

	res := m.Login(ctx, "a@b.com", "secret")
	require.True(t, res.Success)

	s := m.State()
	assert.Equal(t, "abc123", s.Token)
	assert.Equal(t, "1", s.User.ID)

	d, err := New(m).Wait(ctx, Protected)
	require.NoError(t, err)
	assert.Equal(t, RedirectOnboarding, d)
	assert.Equal(t, auth.RouteOnboarding, d.Route())
}
