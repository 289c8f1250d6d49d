package history

import (
	"context"
	"time"

	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/notify"
	"autosalon/internal/storage"
)

const (
	StorageKey = "autoelite_history"
	MaxItems   = 20

	msgCleared = "История просмотров очищена"
	msgFailed  = "Не удалось очистить историю"
)

// Manager keeps one client's recently viewed cars, newest first, one entry
// per car, at most MaxItems entries.
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

// Record moves car to the front of the history. Viewing a car again
// refreshes its viewed_at instead of adding a second entry.
func (m *Manager) Record(ctx context.Context, car domain.CarInput) bool {
	items := m.List(ctx)

	next := make([]domain.HistoryItem, 0, len(items)+1)
	next = append(next, domain.HistoryItem{
		ID:       car.ID,
		Brand:    string(car.Brand),
		Model:    car.Model,
		Price:    int64(car.Price),
		Year:     car.Year,
		ViewedAt: m.now().UTC(),
	})
	for _, item := range items {
		if item.ID != car.ID {
			next = append(next, item)
		}
	}
	if len(next) > MaxItems {
		next = next[:MaxItems]
	}

	if err := m.acc.Set(ctx, StorageKey, next); err != nil {
		m.log.Error("add to history failed", zap.Int64("car_id", car.ID), zap.Error(err))
		return false
	}
	return true
}

// List returns the history, most recently viewed first, never nil.
func (m *Manager) List(ctx context.Context) []domain.HistoryItem {
	var items []domain.HistoryItem
	if !m.acc.Get(ctx, StorageKey, &items) || items == nil {
		return []domain.HistoryItem{}
	}
	return items
}

func (m *Manager) Clear(ctx context.Context) bool {
	if err := m.acc.Remove(ctx, StorageKey); err != nil {
		m.log.Error("clear history failed", zap.Error(err))
		m.notifier.Notify(msgFailed, notify.KindDanger)
		return false
	}
	m.notifier.Notify(msgCleared, notify.KindSuccess)
	return true
}
