package favorite

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/modules/catalog"
	"autosalon/internal/notify"
	"autosalon/internal/storage"
)

// CarFinder looks cars up in the catalog.
type CarFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// Service builds per-client managers over the shared store.
type Service struct {
	store   *storage.Store
	center  *notify.Center
	catalog CarFinder
	log     *zap.Logger
}

func NewService(store *storage.Store, center *notify.Center, catalog CarFinder, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, center: center, catalog: catalog, log: log}
}

// For returns the favorites manager of one client scope.
func (s *Service) For(scope string) *Manager {
	var n notify.Notifier = notify.Discard
	if s.center != nil {
		n = s.center.For(scope)
	}
	return NewManager(s.store.Scope(scope), n, s.log.With(zap.String("scope", scope)))
}

// Favorites lists the favorites of scope in the order they were added.
func (s *Service) Favorites(ctx context.Context, scope string) []domain.FavoriteItem {
	return s.For(scope).List(ctx)
}

// AddCatalogCar adds a catalog car by id.
func (s *Service) AddCatalogCar(ctx context.Context, scope string, carID int64) (domain.FavoriteItem, error) {
	if s.catalog == nil {
		return domain.FavoriteItem{}, ErrCarNotFound
	}
	car, err := s.catalog.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, catalog.ErrCarNotFound) {
			return domain.FavoriteItem{}, ErrCarNotFound
		}
		return domain.FavoriteItem{}, err
	}
	return s.For(scope).AddItem(ctx, car.Input())
}
