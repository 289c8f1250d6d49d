package auth

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/storage"
)

// TokenKey is where the client keeps its access token.
const TokenKey = "autosalon_token"

// Store holds the auth state of one client. Only the token is persisted;
// the profile lives in memory and has to be loaded again (see
// Service.Hydrate).
type Store struct {
	acc *storage.Accessor
	log *zap.Logger

	mu    sync.RWMutex
	state State
}

// NewStore reads the persisted token, if any.
func NewStore(ctx context.Context, acc *storage.Accessor, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{acc: acc, log: log}

	var token string
	if acc.Get(ctx, TokenKey, &token) {
		s.state.Token = token
	}
	return s
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Token() string {
	return s.State().Token
}

func (s *Store) User() *domain.User {
	return s.State().User
}

// SetToken keeps token in memory and persists it. The in-memory value is
// updated even when the write fails.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.state.Token = token
	s.mu.Unlock()

	if err := s.acc.Set(ctx, TokenKey, token); err != nil {
		s.log.Error("persist auth token failed", zap.Error(err))
		return err
	}
	return nil
}

// SetUser replaces the profile in memory only.
func (s *Store) SetUser(user *domain.User) {
	s.mu.Lock()
	s.state.User = user
	s.mu.Unlock()
}

// Logout forgets the user and the token, including the persisted copy.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()

	if err := s.acc.Remove(ctx, TokenKey); err != nil {
		s.log.Error("remove auth token failed", zap.Error(err))
		return err
	}
	return nil
}
