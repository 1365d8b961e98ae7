package auth

// Route is a client entry point the session flow can send the user to.
type Route string

const (
	RouteLogin      Route = "/auth"
	RouteOnboarding Route = "/onboarding"
	RouteChats      Route = "/chats"
)

// Navigator performs the transition to a route.
type Navigator interface {
	Navigate(route Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route Route)

// Navigate calls f(route).
func (f NavigatorFunc) Navigate(route Route) {
	f(route)
}

type noopNavigator struct{}

func (noopNavigator) Navigate(Route) {}
