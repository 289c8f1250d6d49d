package history

import (
	"context"

	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/notify"
	"autosalon/internal/storage"
)

type Service struct {
	store  *storage.Store
	center *notify.Center
	log    *zap.Logger
}

func NewService(store *storage.Store, center *notify.Center, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, center: center, log: log}
}

func (s *Service) For(scope string) *Manager {
	var n notify.Notifier = notify.Discard
	if s.center != nil {
		n = s.center.For(scope)
	}
	return NewManager(s.store.Scope(scope), n, s.log.With(zap.String("scope", scope)))
}

// RecordView records a car page view for scope.
func (s *Service) RecordView(ctx context.Context, scope string, car domain.CarInput) bool {
	return s.For(scope).Record(ctx, car)
}
