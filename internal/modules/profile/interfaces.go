package profile

import (
	"context"

	"autosalon/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, u *domain.User) error
}

// RequestStats reads purchase requests; userID 0 means every user.
type RequestStats interface {
	Count(ctx context.Context, userID int64, statuses ...domain.RequestStatus) (int64, error)
	Recent(ctx context.Context, userID int64, limit int) ([]domain.PurchaseRequest, error)
}

// FavoritesSource lists the favorites of one client scope in the order
// they were added.
type FavoritesSource interface {
	Favorites(ctx context.Context, scope string) []domain.FavoriteItem
}
