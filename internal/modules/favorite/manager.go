package favorite

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/notify"
	"autosalon/internal/storage"
)

const (
	StorageKey       = "autoelite_favorites"
	PlaceholderImage = "https://images.unsplash.com/photo-1549399542-7e3f8b79c341"

	msgAdded        = "Автомобиль добавлен в избранное"
	msgAlreadyAdded = "Автомобиль уже в избранном"
	msgRemoved      = "Автомобиль удален из избранного"
	msgCleared      = "Избранное очищено"
	msgFailed       = "Не удалось обновить избранное"
)

// Manager — избранное одного клиента. Состояние не кешируется: каждый
// вызов заново читает список из хранилища.
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

// List returns favorites in insertion order, never nil.
func (m *Manager) List(ctx context.Context) []domain.FavoriteItem {
	var items []domain.FavoriteItem
	if !m.acc.Get(ctx, StorageKey, &items) || items == nil {
		return []domain.FavoriteItem{}
	}
	return items
}

// Add reports whether car was added. A car that is already present is left
// untouched and yields false.
func (m *Manager) Add(ctx context.Context, car domain.CarInput) bool {
	_, err := m.AddItem(ctx, car)
	return err == nil
}

// AddItem is Add with the reason for a refusal: ErrAlreadyFavorite for a
// duplicate, a storage error otherwise.
func (m *Manager) AddItem(ctx context.Context, car domain.CarInput) (domain.FavoriteItem, error) {
	items := m.List(ctx)
	for _, fav := range items {
		if fav.ID == car.ID {
			m.notifier.Notify(msgAlreadyAdded, notify.KindInfo)
			return fav, ErrAlreadyFavorite
		}
	}

	item := domain.FavoriteItem{
		ID:      car.ID,
		Brand:   string(car.Brand),
		Model:   car.Model,
		Price:   int64(car.Price),
		Year:    car.Year,
		Image:   car.ImageURL,
		AddedAt: m.now().UTC(),
	}
	if item.Image == "" {
		item.Image = PlaceholderImage
	}

	if err := m.acc.Set(ctx, StorageKey, append(items, item)); err != nil {
		m.log.Error("add to favorites failed", zap.Int64("car_id", car.ID), zap.Error(err))
		m.notifier.Notify(msgFailed, notify.KindDanger)
		return domain.FavoriteItem{}, fmt.Errorf("save favorites: %w", err)
	}

	m.notifier.Notify(msgAdded, notify.KindSuccess)
	return item, nil
}

// Remove drops id from favorites. Removing an absent id still succeeds.
func (m *Manager) Remove(ctx context.Context, id int64) bool {
	items := m.List(ctx)
	kept := make([]domain.FavoriteItem, 0, len(items))
	for _, fav := range items {
		if fav.ID != id {
			kept = append(kept, fav)
		}
	}

	if err := m.acc.Set(ctx, StorageKey, kept); err != nil {
		m.log.Error("remove from favorites failed", zap.Int64("car_id", id), zap.Error(err))
		m.notifier.Notify(msgFailed, notify.KindDanger)
		return false
	}

	m.notifier.Notify(msgRemoved, notify.KindSuccess)
	return true
}

func (m *Manager) Contains(ctx context.Context, id int64) bool {
	for _, fav := range m.List(ctx) {
		if fav.ID == id {
			return true
		}
	}
	return false
}

// Clear deletes the whole list. It always notifies.
func (m *Manager) Clear(ctx context.Context) bool {
	if err := m.acc.Remove(ctx, StorageKey); err != nil {
		m.log.Error("clear favorites failed", zap.Error(err))
		m.notifier.Notify(msgFailed, notify.KindDanger)
		return false
	}
	m.notifier.Notify(msgCleared, notify.KindSuccess)
	return true
}
