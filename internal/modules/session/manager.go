// Package session simulates a login on the client side: no password check,
// no backend account, just a demo user record kept in client storage.
package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/notify"
	"autosalon/internal/storage"
)

const (
	StorageKey = "autoelite_user"

	DefaultUsername = "demo@autoelite.ru"
	DefaultPassword = "demo123"

	demoUserID = 1
	demoName   = "Демо Пользователь"
	demoPhone  = "+7 (999) 123-45-67"

	msgLoggedIn  = "Вход выполнен успешно!"
	msgLoggedOut = "Выход выполнен"
)

type Manager struct {
	acc      *storage.Accessor
	notifier notify.Notifier
	log      *zap.Logger
	now      func() time.Time
}

func NewManager(acc *storage.Accessor, notifier notify.Notifier, log *zap.Logger) *Manager {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{acc: acc, notifier: notifier, log: log, now: time.Now}
}

// Login stores the demo user and returns it. The password is accepted
// as-is; an empty username falls back to the demo account.
func (m *Manager) Login(ctx context.Context, username, _ string) domain.SessionUser {
	if username == "" {
		username = DefaultUsername
	}

	user := domain.SessionUser{
		ID:        demoUserID,
		Username:  username,
		Email:     username,
		Name:      demoName,
		Phone:     demoPhone,
		IsDemo:    true,
		LoginTime: m.now().UTC(),
	}

	if err := m.acc.Set(ctx, StorageKey, user); err != nil {
		m.log.Error("save demo session failed", zap.Error(err))
	}
	m.notifier.Notify(msgLoggedIn, notify.KindSuccess)
	return user
}

func (m *Manager) Logout(ctx context.Context) {
	if err := m.acc.Remove(ctx, StorageKey); err != nil {
		m.log.Error("remove demo session failed", zap.Error(err))
	}
	m.notifier.Notify(msgLoggedOut, notify.KindSuccess)
}

// CurrentUser returns nil when nobody is logged in or the record is corrupt.
func (m *Manager) CurrentUser(ctx context.Context) *domain.SessionUser {
	var user domain.SessionUser
	if !m.acc.Get(ctx, StorageKey, &user) {
		return nil
	}
	return &user
}

func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	return m.CurrentUser(ctx) != nil
}
