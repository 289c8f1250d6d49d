// Package router resolves storefront page paths and decides, before a page
// is shown, whether the visitor may see it.
package router

import "strings"

const AppName = "AutoElite"

// Route is one storefront page with its access flags.
type Route struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	Title        string `json:"title,omitempty"`
	RequiresAuth bool   `json:"requires_auth,omitempty"`
	GuestOnly    bool   `json:"guest_only,omitempty"`
}

const (
	RouteHome      = "home"
	RouteCars      = "cars"
	RouteCarDetail = "car-detail"
	RouteLogin     = "login"
	RouteProfile   = "profile"
	RouteRequests  = "requests"
	RouteAbout     = "about"
)

// Routes is the page table, matched in order.
var Routes = []Route{
	{Name: RouteHome, Path: "/", Title: "Главная"},
	{Name: RouteCars, Path: "/cars", Title: "Автомобили"},
	{Name: RouteCarDetail, Path: "/cars/:id", Title: "Детали автомобиля"},
	{Name: RouteLogin, Path: "/login", Title: "Вход", GuestOnly: true},
	{Name: RouteProfile, Path: "/profile", Title: "Профиль", RequiresAuth: true},
	{Name: RouteRequests, Path: "/requests", Title: "Мои заявки", RequiresAuth: true},
	{Name: RouteAbout, Path: "/about", Title: "О компании"},
}

// ByName panics on unknown names; the table is static.
func ByName(name string) Route {
	for _, r := range Routes {
		if r.Name == name {
			return r
		}
	}
	panic("router: unknown route " + name)
}

// Match finds the route for path and extracts its :params.
func Match(path string) (Route, map[string]string, bool) {
	got := splitPath(path)
	for _, r := range Routes {
		if params, ok := matchSegments(splitPath(r.Path), got); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	params := map[string]string{}
	for i, seg := range pattern {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if path[i] == "" {
				return nil, false
			}
			params[name] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}
