package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibogaston/frontendchat/internal/client/auth"
	"github.com/taibogaston/frontendchat/internal/validation"
)

func (a *App) registerCommand() *cobra.Command {
	var (
		nombre, email string
		passwords     passwordSources
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.io.Println("=== Registration ===")
			a.io.Println()

			name, err := a.promptIfEmpty(nombre, "Nombre: ")
			if err != nil {
				return err
			}
			if err := validation.ValidateNombre(name); err != nil {
				return err
			}
			addr, err := a.promptIfEmpty(email, "Email: ")
			if err != nil {
				return err
			}
			if err := validation.ValidateEmail(addr); err != nil {
				return err
			}

			password, err := a.readPassword(passwords, fmt.Sprintf("Password (min %d chars): ", validation.MinPasswordLen))
			if err != nil {
				return err
			}
			confirm := password
			if passwords == (passwordSources{}) && !passwordFromEnv() {
				if confirm, err = a.io.ReadPassword("Confirm password: "); err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
			}
			if err := validation.ValidatePasswordConfirmation(password, confirm); err != nil {
				return err
			}

			a.io.Println()
			a.io.Println("Registering user...")
			res := a.session.Register(cmd.Context(), name, addr, password)
			if !res.Success {
				return errors.New(res.Error)
			}

			a.io.Println()
			a.io.Println("✓ Registration successful!")
			if res.Message != "" {
				a.io.Println(res.Message)
			}
			a.io.Printf("Check your inbox and run '%s verify <token>' to activate the account.\n", AppName)
			return nil
		},
	}
	cmd.Flags().StringVar(&nombre, "nombre", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&passwords.FromArgs, "password", "", "password (prefer "+PasswordEnv+" or --password-file)")
	cmd.Flags().StringVar(&passwords.FromFile, "password-file", "", "file containing the password")
	return cmd
}

func (a *App) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Confirm the email address with the token from the verification email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.session.VerifyEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.io.Println("✓ Email verified!")
			if res.Message != "" {
				a.io.Println(res.Message)
			}
			if !res.Authenticated {
				a.io.Println(nextHint(res.Next))
			}
			return nil
		},
	}
}

func (a *App) forgotPasswordCommand() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := a.promptIfEmpty(email, "Email: ")
			if err != nil {
				return err
			}
			if err := validation.ValidateEmail(addr); err != nil {
				return err
			}
			resp, err := a.client.ForgotPassword(cmd.Context(), addr)
			if err != nil {
				return err
			}
			a.io.Println(messageOr(resp.Message, "Password reset email sent."))
			a.io.Printf("Run '%s reset-password <token>' with the token from the email.\n", AppName)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func (a *App) resetPasswordCommand() *cobra.Command {
	var passwords passwordSources
	cmd := &cobra.Command{
		Use:   "reset-password <token>",
		Short: "Set a new password using the token from the reset email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.readPassword(passwords, "New password: ")
			if err != nil {
				return err
			}
			if err := validation.ValidatePassword(password); err != nil {
				return err
			}
			resp, err := a.client.ResetPassword(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			a.io.Println(messageOr(resp.Message, "✓ Password updated."))
			a.io.Println(nextHint(auth.RouteLogin))
			return nil
		},
	}
	cmd.Flags().StringVar(&passwords.FromArgs, "password", "", "new password")
	cmd.Flags().StringVar(&passwords.FromFile, "password-file", "", "file containing the new password")
	return cmd
}

func (a *App) resendVerificationCommand() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "resend-verification",
		Short: "Send the verification email again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := a.promptIfEmpty(email, "Email: ")
			if err != nil {
				return err
			}
			if err := validation.ValidateEmail(addr); err != nil {
				return err
			}
			resp, err := a.client.ResendVerification(cmd.Context(), addr)
			if err != nil {
				return err
			}
			a.io.Println(messageOr(resp.Message, "Verification email sent."))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
