// Package cli implements the chatcli command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibogaston/frontendchat/internal/client/api"
	"github.com/taibogaston/frontendchat/internal/client/auth"
	"github.com/taibogaston/frontendchat/internal/client/chat"
	"github.com/taibogaston/frontendchat/internal/client/config"
	"github.com/taibogaston/frontendchat/internal/client/guard"
	"github.com/taibogaston/frontendchat/internal/client/iocli"
	"github.com/taibogaston/frontendchat/internal/client/onboarding"
	"github.com/taibogaston/frontendchat/internal/client/storage"
)

// AppName имя исполняемого файла в подсказках
const AppName = "chatcli"

// annotationGuard помечает команды, требующие сессию
const annotationGuard = "guard"

// Значения annotationGuard
const (
	guardSession    = "session"
	guardOnboarding = "onboarding"
)

// VersionInfo заполняется из ldflags в main
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// App связывает конфигурацию, хранилище сессии и сервисы клиента
type App struct {
	cfg     config.Config
	io      iocli.IO
	errOut  io.Writer
	version VersionInfo
	logger  *slog.Logger

	store        storage.SessionStorage
	client       *api.Client
	session      *auth.Manager
	guard        *guard.Guard
	resolver     *chat.Resolver
	conversation *chat.Conversation
	catalog      *chat.Catalog
	onboarding   *onboarding.Service
}

// New создает приложение. Сервисы инициализируются перед выполнением команды.
func New(cfg config.Config, stdio iocli.IO, errOut io.Writer, version VersionInfo) *App {
	if errOut == nil {
		errOut = os.Stderr
	}
	return &App{
		cfg:     cfg,
		io:      stdio,
		errOut:  errOut,
		version: version,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Execute runs the command line in args and releases resources afterwards.
func Execute(ctx context.Context, cfg config.Config, stdio iocli.IO, errOut io.Writer, version VersionInfo, args []string) error {
	app := New(cfg, stdio, errOut, version)
	defer func() {
		if err := app.Close(); err != nil {
			app.logger.Error("failed to close session store", "error", err)
		}
	}()

	root := app.Command()
	root.SetArgs(args)
	root.SetOut(stdio)
	root.SetErr(app.errOut)
	return root.ExecuteContext(ctx)
}

// Command builds the root command with all subcommands.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:               AppName,
		Short:             "Language exchange chat client",
		Version:           a.version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.preRun,
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s (built %s, commit %s)\n",
		AppName, a.version.Version, a.version.BuildDate, a.version.GitCommit))
	a.cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.verifyCommand(),
		a.forgotPasswordCommand(),
		a.resetPasswordCommand(),
		a.resendVerificationCommand(),
		a.statusCommand(),
		a.onboardingCommand(),
		a.preferencesCommand(),
		a.charactersCommand(),
		a.openCommand(),
		a.checkCommand(),
		a.chatsCommand(),
		a.newChatCommand(),
		a.messagesCommand(),
		a.sendCommand(),
		a.deactivateCommand(),
	)
	return root
}

// preRun validates configuration, opens the session and applies the route guard.
func (a *App) preRun(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	level, err := a.cfg.SlogLevel()
	if err != nil {
		return err
	}
	a.logger = newLogger(a.errOut, level)

	ctx := cmd.Context()
	if err := a.init(ctx); err != nil {
		return err
	}
	return a.enforce(ctx, cmd)
}

// init собирает сервисы; Hydrate восстанавливает сессию из хранилища
func (a *App) init(ctx context.Context) error {
	store, err := openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	a.store = store

	var session *auth.Manager
	a.client = api.NewClient(a.cfg.APIURL,
		api.WithTimeout(a.cfg.APITimeout),
		api.WithLogger(a.logger),
		api.WithTokenSource(func() string { return session.Token() }),
	)
	session = auth.NewManager(store, a.client,
		auth.WithLogger(a.logger),
		auth.WithNavigator(&navigator{io: a.io}),
	)
	a.session = session
	a.guard = guard.New(session)
	a.resolver = chat.NewResolver(a.client, a.logger)
	a.conversation = chat.NewConversation(a.client)
	a.catalog = chat.NewCatalog(a.client)
	a.onboarding = onboarding.NewService(a.client, session, a.logger)

	session.Hydrate(ctx)
	return nil
}

// enforce checks the guard annotation of cmd
func (a *App) enforce(ctx context.Context, cmd *cobra.Command) error {
	var req guard.Requirement
	switch cmd.Annotations[annotationGuard] {
	case guardOnboarding:
		req = guard.Protected
	case guardSession:
		req = guard.SessionOnly
	default:
		return nil
	}

	err := a.guard.Enforce(ctx, req)
	var redirect *guard.RedirectError
	if !errors.As(err, &redirect) {
		return err
	}
	switch redirect.Route {
	case auth.RouteOnboarding:
		return fmt.Errorf("onboarding not completed: run '%s onboarding' first", AppName)
	default:
		return fmt.Errorf("%w: run '%s login' first", auth.ErrNotAuthenticated, AppName)
	}
}

// Close закрывает хранилище сессии
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func protected(cmd *cobra.Command, requirement string) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationGuard] = requirement
	return cmd
}
