package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibogaston/frontendchat/internal/client/chat"
	"github.com/taibogaston/frontendchat/internal/models"
	"github.com/taibogaston/frontendchat/internal/validation"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) chatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "List your chats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chats, err := a.conversation.Chats(cmd.Context())
			if err != nil {
				return err
			}
			if len(chats) == 0 {
				a.io.Println("No chats yet.")
				a.io.Printf("Run '%s characters' to find someone to talk with.\n", AppName)
				return nil
			}
			for _, c := range chats {
				status := "active"
				if !c.Activo {
					status = "closed"
				}
				a.io.Printf("%-26s %s (%s) • %s [%s]\n",
					c.ID, c.Partner.Nombre, c.Partner.Nacionalidad, c.Partner.IdiomaObjetivo, status)
			}
			return nil
		},
	}
	return protected(cmd, guardOnboarding)
}

func (a *App) newChatCommand() *cobra.Command {
	var partner models.Partner
	cmd := &cobra.Command{
		Use:   "new-chat",
		Short: "Start a chat with a custom partner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if partner.Genero != "" {
				if err := validation.ValidateCharacterGender(partner.Genero); err != nil {
					return err
				}
			}
			if partner.IdiomaObjetivo == "" {
				partner.IdiomaObjetivo = a.session.State().User.IdiomaObjetivo
			}
			c, err := a.conversation.Start(cmd.Context(), partner)
			if err != nil {
				return err
			}
			a.io.Printf("✓ New chat created: %s\n", c.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&partner.Nombre, "nombre", "", "partner name")
	cmd.Flags().StringVar(&partner.Nacionalidad, "nacionalidad", "", "partner nationality")
	cmd.Flags().StringVar(&partner.Genero, "genero", "", "partner gender: M or F")
	cmd.Flags().StringVar(&partner.IdiomaObjetivo, "idioma", "", "conversation language (default: your target language)")
	_ = cmd.MarkFlagRequired("nombre")
	return protected(cmd, guardOnboarding)
}

func (a *App) messagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages <chatID>",
		Short: "Show chat history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := a.conversation.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				a.io.Println("No messages yet.")
				return nil
			}
			for _, m := range msgs {
				a.printMessage(m)
			}
			return nil
		},
	}
	return protected(cmd, guardOnboarding)
}

func (a *App) sendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <chatID> <message...>",
		Short: "Send a message and print the reply",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.conversation.Send(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if errors.Is(err, chat.ErrEmptyMessage) {
				return errors.New("message must not be empty")
			}
			if err != nil {
				return err
			}
			if res.Reply != nil {
				a.printMessage(*res.Reply)
			}
			if res.NewChat != nil {
				a.io.Println()
				a.io.Printf("%s (%s) wants to talk with you: chat %s\n",
					res.NewChat.Partner.Nombre, res.NewChat.Partner.Nacionalidad, res.NewChat.ID)
			}
			return nil
		},
	}
	return protected(cmd, guardOnboarding)
}

func (a *App) deactivateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deactivate <chatID>",
		Short: "Close a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.conversation.Deactivate(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.io.Printf("✓ Chat %s closed\n", args[0])
			return nil
		},
	}
	return protected(cmd, guardOnboarding)
}

func (a *App) printMessage(m models.Message) {
	who := "you"
	if m.Sender == models.SenderAI {
		who = "them"
	}
	if m.CreatedAt.IsZero() {
		a.io.Printf("[%s] %s\n", who, m.Content)
		return
	}
	a.io.Printf("%s [%s] %s\n", m.CreatedAt.Local().Format(timeLayout), who, m.Content)
}
