package auth

import "autosalon/internal/domain"

// State is what a client knows about its own login: the token it keeps and
// the profile it loaded with that token. Everything else is derived.
type State struct {
	Token string
	User  *domain.User
}

// IsAuthenticated depends on the token alone; a token without a loaded
// profile still counts.
func (s State) IsAuthenticated() bool {
	return s.Token != ""
}

// Role falls back to client while no profile is loaded.
func (s State) Role() domain.UserRole {
	if s.User == nil || s.User.Role == "" {
		return domain.RoleClient
	}
	return s.User.Role
}

func (s State) IsManager() bool {
	return s.Role().IsManager()
}

func (s State) IsAdmin() bool {
	return s.Role().IsAdmin()
}
