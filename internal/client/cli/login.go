package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/taibogaston/frontendchat/internal/client/auth"
	"github.com/taibogaston/frontendchat/internal/client/guard"
	"github.com/taibogaston/frontendchat/internal/validation"
)

func (a *App) loginCommand() *cobra.Command {
	var (
		email     string
		passwords passwordSources
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.io.Println("=== Login ===")
			a.io.Println()

			addr, err := a.promptIfEmpty(email, "Email: ")
			if err != nil {
				return err
			}
			if err := validation.ValidateEmail(addr); err != nil {
				return err
			}
			password, err := a.readPassword(passwords, "Password: ")
			if err != nil {
				return err
			}

			a.io.Println()
			a.io.Println("Authenticating...")
			res := a.session.Login(cmd.Context(), addr, password)
			if !res.Success {
				return errors.New(res.Error)
			}

			state := a.session.State()
			a.io.Println()
			a.io.Println("✓ Login successful!")
			a.io.Printf("Welcome, %s <%s>\n", state.User.Nombre, state.User.Email)
			a.io.Println()

			next := auth.RouteChats
			if d := guard.Evaluate(state, guard.Protected); d != guard.Render {
				next = d.Route()
			}
			a.io.Println(nextHint(next))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&passwords.FromArgs, "password", "", "password (prefer "+PasswordEnv+" or --password-file)")
	cmd.Flags().StringVar(&passwords.FromFile, "password-file", "", "file containing the password")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Logout(cmd.Context()); err != nil {
				return err
			}
			a.io.Println("✓ Logged out")
			return nil
		},
	}
}
