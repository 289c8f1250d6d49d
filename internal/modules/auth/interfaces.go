package auth

import (
	"context"

	"autosalon/internal/domain"
	"autosalon/internal/pkg/jwt"
)

// UserRepositoryInterface lists the user queries the auth service needs.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}
