package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibogaston/frontendchat/internal/client/auth"
	"github.com/taibogaston/frontendchat/internal/client/config"
	"github.com/taibogaston/frontendchat/internal/client/iocli"
	"github.com/taibogaston/frontendchat/internal/models"
	pkgapi "github.com/taibogaston/frontendchat/pkg/api"
)

const testToken = "abc123"

// fakeBackend минимальный backend для сквозных сценариев CLI
type fakeBackend struct {
	mu         sync.Mutex
	user       models.User
	chats      []models.Chat
	messages   map[string][]models.Message
	characters map[string]models.Character
	created    int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		user: models.User{
			ID:            "u1",
			Nombre:        "Ana",
			Email:         "ana@example.com",
			EmailVerified: true,
		},
		messages: map[string][]models.Message{},
		characters: map[string]models.Character{
			"char-aiko": {ID: "char-aiko", Nombre: "Aiko", Nacionalidad: "Japón", Genero: "F", IdiomaObjetivo: "japonés"},
		},
	}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret1" {
			writeJSON(w, http.StatusUnauthorized, pkgapi.ErrorResponse{Error: "Credenciales inválidas"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, pkgapi.LoginResponse{Token: testToken, User: b.user.Clone()})
	})
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, pkgapi.RegisterResponse{Message: "Revisa tu correo"})
	})
	mux.HandleFunc("GET /api/auth/verify/{token}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("token") != "good" {
			writeJSON(w, http.StatusBadRequest, pkgapi.ErrorResponse{Error: "Token expirado"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, pkgapi.VerifyEmailResponse{Message: "Email verificado", Token: testToken, User: b.user.Clone()})
	})
	mux.HandleFunc("GET /api/users/me", b.authorized(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, b.user)
	}))
	mux.HandleFunc("PATCH /api/users/preferences", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		var prefs map[string]string
		_ = json.NewDecoder(r.Body).Decode(&prefs)
		if v, ok := prefs["nivel_idioma"]; ok {
			b.user.NivelIdioma = v
		}
		writeJSON(w, http.StatusOK, b.user)
	}))
	mux.HandleFunc("GET /api/onboarding/status", b.authorized(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, pkgapi.OnboardingStatusResponse{OnboardingCompleted: b.user.OnboardingCompleted})
	}))
	mux.HandleFunc("POST /api/onboarding/complete", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.OnboardingRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.user.IdiomaPrincipal = req.IdiomaPrincipal
		b.user.IdiomaObjetivo = req.IdiomaObjetivo
		b.user.NivelIdioma = req.NivelIdioma
		b.user.PreferenciaGenero = req.PreferenciaGenero
		b.user.Intereses = req.Intereses
		b.user.Pais = req.Pais
		b.user.Edad = req.Edad
		b.user.OnboardingCompleted = true
		def := models.Chat{ID: "chat-default", Partner: models.Partner{Nombre: "Sofía", Nacionalidad: "España"}, Activo: true}
		b.chats = append(b.chats, def)
		writeJSON(w, http.StatusOK, pkgapi.OnboardingResponse{User: b.user.Clone(), DefaultChat: &def})
	}))
	mux.HandleFunc("GET /api/characters/{id}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		c, ok := b.characters[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, pkgapi.ErrorResponse{Error: "Personaje no encontrado"})
			return
		}
		writeJSON(w, http.StatusOK, c)
	}))
	mux.HandleFunc("POST /api/characters/{id}/chat", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		c := b.characters[r.PathValue("id")]
		b.created++
		chat := models.Chat{ID: "chat-" + c.ID, Activo: true, Partner: models.Partner{
			Nombre: c.Nombre, Nacionalidad: c.Nacionalidad, Genero: c.Genero, IdiomaObjetivo: c.IdiomaObjetivo,
		}}
		b.chats = append(b.chats, chat)
		writeJSON(w, http.StatusCreated, pkgapi.CreateChatWithCharacterResponse{ChatID: chat.ID, Character: c, Success: true})
	}))
	mux.HandleFunc("GET /api/chats", b.authorized(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, b.chats)
	}))
	mux.HandleFunc("GET /api/messages/{chatID}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.messages[r.PathValue("chatID")])
	}))
	mux.HandleFunc("POST /api/messages/{chatID}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.SendMessageRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		id := r.PathValue("chatID")
		now := time.Date(2025, 5, 1, 10, 0, len(b.messages[id]), 0, time.UTC)
		sent := models.Message{Sender: req.Sender, Content: req.Content, CreatedAt: now}
		reply := models.Message{Sender: models.SenderAI, Content: "こんにちは", CreatedAt: now.Add(time.Second)}
		b.messages[id] = append(b.messages[id], sent, reply)
		writeJSON(w, http.StatusOK, pkgapi.SendMessageResponse{UserMessage: &sent, Reply: &reply})
	}))
	return mux
}

// authorized проверяет Bearer токен и сериализует доступ к состоянию
func (b *fakeBackend) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, pkgapi.ErrorResponse{Error: "Token inválido"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		next(w, r)
	}
}

// snapshot возвращает копию состояния для проверок в тестах
func (b *fakeBackend) snapshot() (models.User, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return *b.user.Clone(), b.created
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type testEnv struct {
	t   *testing.T
	cfg config.Config
	b   *fakeBackend
}

func newTestEnv(t *testing.T, store string) *testEnv {
	t.Helper()
	t.Setenv(PasswordEnv, "")
	b := newFakeBackend()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return &testEnv{
		t: t,
		b: b,
		cfg: config.Config{
			APIURL:     srv.URL + "/api",
			Store:      store,
			DBPath:     filepath.Join(t.TempDir(), "session.db"),
			LogLevel:   "error",
			APITimeout: 5 * time.Second,
		},
	}
}

// run выполняет команду как отдельный запуск процесса: сессия живет только в хранилище
func (e *testEnv) run(input string, args ...string) (string, error) {
	e.t.Helper()
	var out bytes.Buffer
	stdio := iocli.New(strings.NewReader(input), &out)
	version := VersionInfo{Version: "1.2.3", BuildDate: "2025-05-01", GitCommit: "abcdef0"}
	err := Execute(context.Background(), e.cfg, stdio, io.Discard, version, args)
	return out.String(), err
}

func (e *testEnv) mustRun(input string, args ...string) string {
	e.t.Helper()
	out, err := e.run(input, args...)
	require.NoError(e.t, err, out)
	return out
}

// onboardingInput: español/japonés, значения по умолчанию, два интереса, Japón и 25 лет
const onboardingInput = "1\n7\n\n\n1,2\nJapón\n25\n"

func TestApp_FullFlow(t *testing.T) {
	for _, store := range []string{config.StoreBolt, config.StoreSQLite} {
		t.Run(store, func(t *testing.T) {
			env := newTestEnv(t, store)

			_, err := env.run("", "chats")
			require.Error(t, err)
			assert.True(t, errors.Is(err, auth.ErrNotAuthenticated))
			assert.Contains(t, err.Error(), "chatcli login")

			out := env.mustRun("", "login", "--email", "ana@example.com", "--password", "secret1")
			assert.Contains(t, out, "Welcome, Ana <ana@example.com>")
			assert.Contains(t, out, "chatcli onboarding")

			_, err = env.run("", "chats")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "onboarding not completed")

			out = env.mustRun(onboardingInput, "onboarding")
			assert.Contains(t, out, "Onboarding completed")
			assert.Contains(t, out, "chat-default")
			user, _ := env.b.snapshot()
			assert.Equal(t, []string{"viajes", "cultura"}, user.Intereses)
			assert.Equal(t, "japonés", user.IdiomaObjetivo)
			assert.Equal(t, "principiante", user.NivelIdioma)
			assert.Equal(t, "A", user.PreferenciaGenero)
			assert.Equal(t, 25, user.Edad)

			out = env.mustRun("", "open", "char-aiko")
			assert.Contains(t, out, "New chat created: chat-char-aiko")
			out = env.mustRun("", "open", "char-aiko")
			assert.Contains(t, out, "Existing chat: chat-char-aiko")
			_, created := env.b.snapshot()
			assert.Equal(t, 1, created)

			out = env.mustRun("", "send", "chat-char-aiko", "hola", "Aiko")
			assert.Contains(t, out, "こんにちは")

			out = env.mustRun("", "messages", "chat-char-aiko")
			assert.Less(t, strings.Index(out, "hola Aiko"), strings.Index(out, "こんにちは"))

			out = env.mustRun("", "chats")
			assert.Contains(t, out, "Sofía (España)")
			assert.Contains(t, out, "Aiko (Japón)")

			out = env.mustRun("", "logout")
			assert.Contains(t, out, "Logged out")
			assert.Contains(t, out, "chatcli login")

			_, err = env.run("", "chats")
			assert.True(t, errors.Is(err, auth.ErrNotAuthenticated))
		})
	}
}

func TestApp_LoginFailureShowsServerMessage(t *testing.T) {
	env := newTestEnv(t, config.StoreBolt)

	_, err := env.run("", "login", "--email", "ana@example.com", "--password", "wrong")
	require.EqualError(t, err, "Credenciales inválidas")

	out := env.mustRun("", "status", "--offline")
	assert.Contains(t, out, "Not authenticated")
}

func TestApp_LoginPromptsForMissingValues(t *testing.T) {
	env := newTestEnv(t, config.StoreBolt)

	out := env.mustRun("ana@example.com\nsecret1\n", "login")
	assert.Contains(t, out, "Email: ")
	assert.Contains(t, out, "Password: ")
	assert.Contains(t, out, "Login successful")
}

func TestApp_VerifyStartsSession(t *testing.T) {
	env := newTestEnv(t, config.StoreBolt)

	_, err := env.run("", "verify", "expired")
	require.Error(t, err)

	out := env.mustRun("", "verify", "good")
	assert.Contains(t, out, "Email verificado")
	assert.Contains(t, out, "chatcli onboarding")

	out = env.mustRun("", "status")
	assert.Contains(t, out, "Status: Authenticated")
	assert.Contains(t, out, "Onboarding: pending")
}

func TestApp_Register(t *testing.T) {
	env := newTestEnv(t, config.StoreBolt)

	out := env.mustRun("secret1\nsecret1\n", "register", "--nombre", "Ana", "--email", "ana@example.com")
	assert.Contains(t, out, "Registration successful")
	assert.Contains(t, out, "Revisa tu correo")

	_, err := env.run("secret1\nsecret2\n", "register", "--nombre", "Ana", "--email", "ana@example.com")
	require.Error(t, err)

	_, err = env.run("", "register", "--nombre", "Ana", "--email", "not-an-email", "--password", "secret1")
	require.Error(t, err)
}

func TestApp_OnboardingBackAndRetry(t *testing.T) {
	env := newTestEnv(t, config.StoreBolt)
	env.mustRun("", "login", "--email", "ana@example.com", "--password", "secret1")

	// шаг 2: "<" возвращает на шаг 1, затем повторно выбираем языки;
	// на шаге 4 недопустимый возраст повторяет шаг
	input := "1\n7\n<\n2\n7\n\n\n\nJapón\n5\nJapón\n30\n"
	out := env.mustRun(input, "onboarding")
	assert.Contains(t, out, "Onboarding completed")
	assert.Contains(t, out, "✗ ")
	user, _ := env.b.snapshot()
	assert.Equal(t, "inglés", user.IdiomaPrincipal)
	assert.Equal(t, 30, user.Edad)

	out = env.mustRun("", "onboarding")
	assert.Contains(t, out, "already completed")
}

func TestApp_Preferences(t *testing.T) {
	env := newTestEnv(t, config.StoreBolt)
	env.mustRun("", "login", "--email", "ana@example.com", "--password", "secret1")
	env.mustRun(onboardingInput, "onboarding")

	_, err := env.run("", "preferences", "--level", "experto")
	require.Error(t, err)

	out := env.mustRun("", "preferences", "--level", "avanzado")
	assert.Contains(t, out, "Preferences updated")

	out = env.mustRun("", "status", "--offline")
	assert.Contains(t, out, "Onboarding: completed")
}

func TestApp_StatusOnline(t *testing.T) {
	env := newTestEnv(t, config.StoreBolt)
	env.mustRun("", "login", "--email", "ana@example.com", "--password", "secret1")

	out := env.mustRun("", "status")
	assert.Contains(t, out, "Status: Authenticated")
	assert.Contains(t, out, "User: Ana <ana@example.com>")
}

func TestApp_Version(t *testing.T) {
	env := newTestEnv(t, config.StoreBolt)

	out := env.mustRun("", "--version")
	assert.Equal(t, "chatcli 1.2.3 (built 2025-05-01, commit abcdef0)\n", out)
}

func TestApp_InvalidConfig(t *testing.T) {
	env := newTestEnv(t, config.StoreBolt)
	env.cfg.Store = "redis"

	_, err := env.run("", "status")
	require.ErrorContains(t, err, "unknown store")
}
