package domain

// Route is one of the two fixed bus lines. Routes are compiled-in
// configuration, never stored as rows.
type Route string

const (
	RouteAmeerpet     Route = "Ameerpet"
	RouteJubileeHills Route = "Jubilee Hills"
)

// SeatsPerRoute is the fixed capacity of every route.
const SeatsPerRoute = 40

// Routes returns all known routes in display order.
func Routes() []Route {
	return []Route{RouteAmeerpet, RouteJubileeHills}
}

func IsValidRoute(v string) bool {
	switch Route(v) {
	case RouteAmeerpet, RouteJubileeHills:
		return true
	}
	return false
}

// Capacity returns the seat count for a known route, 0 otherwise.
func Capacity(r Route) int {
	if !IsValidRoute(string(r)) {
		return 0
	}
	return SeatsPerRoute
}
