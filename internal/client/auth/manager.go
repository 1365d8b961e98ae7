package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibogaston/frontendchat/internal/client/api"
	"github.com/taibogaston/frontendchat/internal/client/storage"
	"github.com/taibogaston/frontendchat/internal/models"
	pkgapi "github.com/taibogaston/frontendchat/pkg/api"
)

// Сообщения по умолчанию, когда сервер не прислал текст ошибки
const (
	LoginFailedMessage    = "Error en el login"
	RegisterFailedMessage = "Error en el registro"
	SaveFailedMessage     = "No se pudo guardar la sesión"
)

// CodeLocalStorage сервер принял вход, но сессию не удалось сохранить локально
const CodeLocalStorage api.Code = "local_storage"

// AuthAPI is the part of the backend the session manager talks to.
// *api.Client satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*pkgapi.LoginResponse, error)
	Register(ctx context.Context, nombre, email, password string) (*pkgapi.RegisterResponse, error)
	VerifyEmail(ctx context.Context, token string) (*pkgapi.VerifyEmailResponse, error)
}

// State снимок состояния сессии
type State struct {
	User    *models.User
	Token   string
	Loading bool // true только до завершения Hydrate
}

// Authenticated reports whether both token and user are present.
func (s State) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Result результат login/register для показа пользователю
type Result struct {
	Message string   // сообщение сервера при успехе (register)
	Error   string   // текст ошибки для показа
	Code    api.Code // классификация ошибки, пусто при успехе
	Success bool
}

// VerifyResult результат подтверждения email
type VerifyResult struct {
	Message       string
	Next          Route // куда перейти после верификации
	Authenticated bool  // сервер выдал сессию
}

// Option настраивает Manager
type Option func(*Manager)

// WithNavigator sets the navigator used by Logout and VerifyEmail.
func WithNavigator(n Navigator) Option {
	return func(m *Manager) {
		if n != nil {
			m.nav = n
		}
	}
}

// WithLogger sets the manager logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager владеет сессией клиента: состояние в памяти и его копия в SessionStorage.
// Manager единственный, кто пишет в хранилище.
type Manager struct {
	store  storage.SessionStorage
	api    AuthAPI
	nav    Navigator
	logger *slog.Logger

	hydrateOnce sync.Once

	mu    sync.RWMutex
	state State

	subMu  sync.Mutex
	subs   map[int]chan State
	nextID int
}

// NewManager создает менеджер сессии. До вызова Hydrate состояние Loading.
func NewManager(store storage.SessionStorage, authAPI AuthAPI, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		api:    authAPI,
		nav:    noopNavigator{},
		logger: slog.Default(),
		state:  State{Loading: true},
		subs:   make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Hydrate restores the session from storage. Only the first call does any work.
// A corrupt stored user is cleared and never reported to the caller.
func (m *Manager) Hydrate(ctx context.Context) {
	m.hydrateOnce.Do(func() {
		m.hydrate(ctx)
	})
}

func (m *Manager) hydrate(ctx context.Context) {
	m.mu.Lock()
	token, user := m.readStored(ctx)
	m.state = State{Token: token, User: user}
	m.notify(m.snapshotLocked())
	m.mu.Unlock()
}

// readStored returns the persisted pair or empty values when the session is absent or broken
func (m *Manager) readStored(ctx context.Context) (string, *models.User) {
	token, err := m.store.Get(ctx, storage.KeyToken)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			m.logger.Warn("failed to read stored token", "error", err)
		}
		return "", nil
	}
	raw, err := m.store.Get(ctx, storage.KeyUser)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			m.logger.Warn("failed to read stored user", "error", err)
		}
		return "", nil
	}

	var user *models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user == nil {
		m.logger.Warn("stored user is malformed, clearing session", "error", err)
		if err := m.store.RemoveMany(ctx, storage.KeyToken, storage.KeyUser); err != nil {
			m.logger.Warn("failed to clear malformed session", "error", err)
		}
		return "", nil
	}
	if token == "" {
		return "", nil
	}
	return token, user
}

// Login аутентифицирует пользователя и при успехе сохраняет сессию.
// При ошибке состояние не меняется.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return failure(err, LoginFailedMessage)
	}
	if resp == nil || resp.Token == "" || resp.User == nil {
		return Result{Error: LoginFailedMessage, Code: api.CodeServer}
	}
	if err := m.SetAuthData(ctx, resp.Token, resp.User); err != nil {
		m.logger.Error("failed to persist session", "error", err)
		return Result{Error: SaveFailedMessage, Code: CodeLocalStorage}
	}
	return Result{Success: true}
}

// Register регистрирует пользователя. Сессия не создается: нужна верификация email.
func (m *Manager) Register(ctx context.Context, nombre, email, password string) Result {
	resp, err := m.api.Register(ctx, nombre, email, password)
	if err != nil {
		return failure(err, RegisterFailedMessage)
	}
	res := Result{Success: true}
	if resp != nil {
		res.Message = resp.Message
	}
	return res
}

// failure converts an API error to a displayable Result.
// Server text wins; a reachable server without readable text gets the fallback.
func failure(err error, fallback string) Result {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return Result{Error: api.GenericErrorMessage, Code: api.CodeTransport}
	}
	msg := apiErr.Message
	switch {
	case apiErr.FromBody && msg != "":
	case msg == api.GenericErrorMessage:
	default:
		msg = fallback
	}
	return Result{Error: msg, Code: apiErr.Code}
}

// VerifyEmail подтверждает email по токену из письма.
// Если сервер вернул token и user, сессия сохраняется и выполняется переход
// на onboarding или к списку чатов.
func (m *Manager) VerifyEmail(ctx context.Context, token string) (VerifyResult, error) {
	resp, err := m.api.VerifyEmail(ctx, token)
	if err != nil {
		return VerifyResult{}, err
	}

	res := VerifyResult{Message: resp.Message, Next: RouteLogin}
	if resp.Token == "" || resp.User == nil {
		return res, nil
	}
	if err := m.SetAuthData(ctx, resp.Token, resp.User); err != nil {
		return VerifyResult{}, err
	}
	res.Authenticated = true
	res.Next = RouteChats
	if !resp.User.OnboardingCompleted {
		res.Next = RouteOnboarding
	}
	m.nav.Navigate(res.Next)
	return res, nil
}

// SetAuthData is the single mutation path of the session.
// Both keys are written in one transaction before memory is swapped, so a storage
// failure leaves the previous session intact.
func (m *Manager) SetAuthData(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return errors.New("token and user are required")
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	m.mu.Lock()
	if err := m.store.SetMany(ctx, map[string]string{
		storage.KeyToken: token,
		storage.KeyUser:  string(data),
	}); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to save session: %w", err)
	}
	m.state = State{Token: token, User: user.Clone()}
	m.notify(m.snapshotLocked())
	m.mu.Unlock()
	return nil
}

// UpdateUser merges patch into the current user and writes it through.
// Does nothing when there is no session.
func (m *Manager) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	m.mu.Lock()
	if m.state.User == nil {
		m.mu.Unlock()
		return nil
	}
	merged := patch.Apply(m.state.User)
	data, err := json.Marshal(merged)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeyUser, string(data)); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to save user: %w", err)
	}
	m.state.User = merged
	m.notify(m.snapshotLocked())
	m.mu.Unlock()
	return nil
}

// Logout очищает сессию в памяти и в хранилище, затем переходит на экран входа.
// Память очищается даже если хранилище вернуло ошибку.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.state = State{}
	err := m.store.RemoveMany(ctx, storage.KeyToken, storage.KeyUser)
	m.notify(m.snapshotLocked())
	m.mu.Unlock()
	m.nav.Navigate(RouteLogin)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Token returns the current bearer token or empty string.
// It is the TokenSource of the API client.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

// State returns a copy of the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// User returns a copy of the current user or ErrNotAuthenticated.
func (m *Manager) User() (*models.User, error) {
	s := m.State()
	if !s.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.User, nil
}

func (m *Manager) snapshotLocked() State {
	return State{
		User:    m.state.User.Clone(),
		Token:   m.state.Token,
		Loading: m.state.Loading,
	}
}

// Subscribe returns a channel that receives the latest state after every change.
// Slow readers only see the most recent state. The returned func unsubscribes.
func (m *Manager) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = ch
	m.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.subMu.Lock()
			delete(m.subs, id)
			m.subMu.Unlock()
		})
	}
}

// notify вызывается под m.mu, чтобы подписчики видели изменения в порядке применения
func (m *Manager) notify(s State) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		// вытесняем устаревшее состояние
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
