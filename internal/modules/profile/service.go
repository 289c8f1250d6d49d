package profile

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/notify"
	"autosalon/internal/pkg/validator"
	"autosalon/internal/repository"
)

const (
	FavoritesPreview      = 6
	RecentRequestsClient  = 5
	RecentRequestsManager = 10

	msgUpdated = "Профиль обновлён"
)

// activeStatuses are the requests still waiting for the salon.
var activeStatuses = []domain.RequestStatus{domain.RequestPending, domain.RequestProcessing}

type Service struct {
	users     UserRepository
	requests  RequestStats
	favorites FavoritesSource
	center    *notify.Center
	log       *zap.Logger
}

func NewService(users UserRepository, requests RequestStats, favorites FavoritesSource, center *notify.Center, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{users: users, requests: requests, favorites: favorites, center: center, log: log}
}

// Summary is the personal page. Managers get salon-wide request numbers
// and their own count separately in UserRequestsCount.
type Summary struct {
	User                  *domain.User
	IsManager             bool
	FavoritesCount        int
	FavoriteCars          []domain.FavoriteItem
	PurchaseRequestsCount int64
	ActiveRequestsCount   int64
	UserRequestsCount     int64
	RecentRequests        []domain.PurchaseRequest
}

// ValidationError carries per-field failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }
func (e *ValidationError) Unwrap() error { return ErrValidation }

func (s *Service) user(ctx context.Context, userID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Summary collects the profile page for userID browsing from scope. The
// role comes from the stored user, not from the token.
func (s *Service) Summary(ctx context.Context, scope string, userID int64) (*Summary, error) {
	u, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""

	out := &Summary{User: u, IsManager: u.Role.IsManager()}

	if s.favorites != nil {
		favs := s.favorites.Favorites(ctx, scope)
		out.FavoritesCount = len(favs)
		// новые сверху
		for i := len(favs) - 1; i >= 0 && len(out.FavoriteCars) < FavoritesPreview; i-- {
			out.FavoriteCars = append(out.FavoriteCars, favs[i])
		}
	}

	statsFor, limit := userID, RecentRequestsClient
	if out.IsManager {
		statsFor, limit = 0, RecentRequestsManager
		if out.UserRequestsCount, err = s.requests.Count(ctx, userID); err != nil {
			return nil, err
		}
	}

	if out.PurchaseRequestsCount, err = s.requests.Count(ctx, statsFor); err != nil {
		return nil, err
	}
	if out.ActiveRequestsCount, err = s.requests.Count(ctx, statsFor, activeStatuses...); err != nil {
		return nil, err
	}
	if out.RecentRequests, err = s.requests.Recent(ctx, statsFor, limit); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies the fields present in req. Role changes are refused.
func (s *Service) Update(ctx context.Context, scope string, userID int64, req UpdateRequest) (*domain.User, error) {
	if req.Role != nil {
		return nil, ErrRoleReadOnly
	}

	u, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := profileFields{
		FirstName:  pick(req.FirstName, u.FirstName),
		LastName:   pick(req.LastName, u.LastName),
		Email:      strings.ToLower(pick(req.Email, u.Email)),
		Phone:      pick(req.Phone, u.Phone),
		Department: pick(req.Department, u.Department),
		Position:   pick(req.Position, u.Position),
	}
	if errs := validator.Validate(fields); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	u.FirstName = fields.FirstName
	u.LastName = fields.LastName
	u.Email = fields.Email
	u.Phone = fields.Phone
	u.Department = fields.Department
	u.Position = fields.Position

	if err := s.users.UpdateProfile(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.log.Info("profile updated", zap.Int64("user_id", u.ID))
	if s.center != nil && scope != "" {
		s.center.Push(scope, msgUpdated, notify.KindSuccess)
	}
	u.PasswordHash = ""
	return u, nil
}

func pick(v *string, current string) string {
	if v == nil {
		return current
	}
	return strings.TrimSpace(*v)
}
