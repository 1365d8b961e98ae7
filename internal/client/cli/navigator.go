package cli

import (
	"github.com/taibogaston/frontendchat/internal/client/auth"
	"github.com/taibogaston/frontendchat/internal/client/iocli"
)

// navigator переводит маршруты в подсказку о следующей команде
type navigator struct {
	io iocli.IO
}

func (n *navigator) Navigate(route auth.Route) {
	if hint := nextHint(route); hint != "" {
		n.io.Println(hint)
	}
}

func nextHint(route auth.Route) string {
	switch route {
	case auth.RouteLogin:
		return "Run '" + AppName + " login' to sign in."
	case auth.RouteOnboarding:
		return "Run '" + AppName + " onboarding' to complete your profile."
	case auth.RouteChats:
		return "Run '" + AppName + " chats' to see your conversations."
	default:
		return ""
	}
}
