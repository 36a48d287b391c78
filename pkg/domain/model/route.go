package model

// Route is one of the fixed responses the dispatcher can select
type Route int

const (
	RouteNotFound Route = iota
	RouteHome
	RouteHealth
	RouteAPIHello
)

var routePaths = map[Route]string{
	RouteHome:     "/",
	RouteHealth:   "/health",
	RouteAPIHello: "/api/hello",
}

// Routes returns every route bound to a path. RouteNotFound is excluded.
func Routes() []Route {
	return []Route{RouteHome, RouteHealth, RouteAPIHello}
}

// Path returns the exact path served by the route, or "" for RouteNotFound
func (r Route) Path() string {
	return routePaths[r]
}

// String returns the route name for logging
func (r Route) String() string {
	switch r {
	case RouteHome:
		return "home"
	case RouteHealth:
		return "health"
	case RouteAPIHello:
		return "api_hello"
	default:
		return "not_found"
	}
}

// ResolveRoute maps a decoded request path to a route by exact match.
// Anything else, including trailing-slash variants, is RouteNotFound.
func ResolveRoute(path string) Route {
	for _, r := range Routes() {
		if r.Path() == path {
			return r
		}
	}
	return RouteNotFound
}
