package domain

const (
	RouteSplash    = "/"
	RouteLogin     = "/login"
	RouteSignup    = "/signup"
	RouteDashboard = "/dashboard"
)

var publicRoutes = map[string]struct{}{
	RouteSplash: {},
	RouteLogin:  {},
	RouteSignup: {},
}

func IsPublic(path string) bool {
	_, ok := publicRoutes[path]
	return ok
}

// Guard returns the route to redirect to, if any. It never redirects while the
// session is still being restored.
func Guard(path string, loading, authenticated bool) (string, bool) {
	if loading || authenticated || IsPublic(path) {
		return "", false
	}
	return RouteLogin, true
}
