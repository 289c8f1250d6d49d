package router

// Action is the outcome of a navigation check.
type Action int

const (
	Proceed Action = iota
	Redirect
)

// Decision tells where a navigation ends up. Title always comes from the
// requested page, even when the visitor is sent elsewhere.
type Decision struct {
	Action Action
	Target Route
	Title  string
}

// Evaluate runs the access rules for to, in order: protected pages send
// guests to login, guest-only pages send signed-in users home, everything
// else proceeds.
func Evaluate(to Route, authenticated bool) Decision {
	title := Title(to)

	if to.RequiresAuth && !authenticated {
		return Decision{Action: Redirect, Target: ByName(RouteLogin), Title: title}
	}
	if to.GuestOnly && authenticated {
		return Decision{Action: Redirect, Target: ByName(RouteHome), Title: title}
	}
	return Decision{Action: Proceed, Target: to, Title: title}
}

// Title is "<page> | AutoElite", or just the app name for untitled pages.
func Title(r Route) string {
	if r.Title == "" {
		return AppName
	}
	return r.Title + " | " + AppName
}
