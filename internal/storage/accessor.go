package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Store hands out scoped accessors over a shared backend.
type Store struct {
	backend Backend
	log     *zap.Logger
}

func NewStore(backend Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{backend: backend, log: log}
}

// Scope returns an accessor bound to one client scope.
func (s *Store) Scope(scope string) *Accessor {
	return &Accessor{
		backend: s.backend,
		scope:   scope,
		log:     s.log.With(zap.String("scope", scope)),
	}
}

// Accessor reads and writes JSON values for a single client scope.
type Accessor struct {
	backend Backend
	scope   string
	log     *zap.Logger
}

// NewAccessor is a shortcut for NewStore(backend, log).Scope(scope).
func NewAccessor(backend Backend, scope string, log *zap.Logger) *Accessor {
	return NewStore(backend, log).Scope(scope)
}

func (a *Accessor) Scope() string {
	return a.scope
}

// Get decodes the value stored under key into dest. It reports false when
// the key is missing, the backend fails or the stored JSON is corrupt; the
// last two are logged, none of them reach the caller.
func (a *Accessor) Get(ctx context.Context, key string, dest any) bool {
	raw, err := a.backend.Get(ctx, a.scope, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		a.log.Warn("storage value is not valid JSON", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set encodes value as JSON and writes it under key.
func (a *Accessor) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := a.backend.Set(ctx, a.scope, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Remove deletes key; a missing key is fine.
func (a *Accessor) Remove(ctx context.Context, key string) error {
	if err := a.backend.Delete(ctx, a.scope, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
