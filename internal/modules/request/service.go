package request

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/modules/catalog"
	"autosalon/internal/notify"
	"autosalon/internal/pkg/validator"
	"autosalon/internal/repository"
)

const (
	msgCreated       = "Заявка отправлена! Менеджер свяжется с вами."
	msgStatusUpdated = "Статус заявки обновлён"
)

type RequestRepository interface {
	Create(ctx context.Context, pr *domain.PurchaseRequest) error
	GetByID(ctx context.Context, id int64) (*domain.PurchaseRequest, error)
	List(ctx context.Context, userID int64) ([]domain.PurchaseRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, comment string) error
}

type CarFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

type Service struct {
	requests RequestRepository
	cars     CarFinder
	center   *notify.Center
	log      *zap.Logger
}

func NewService(requests RequestRepository, cars CarFinder, center *notify.Center, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{requests: requests, cars: cars, center: center, log: log}
}

// ValidationError carries per-field failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }
func (e *ValidationError) Unwrap() error { return ErrValidation }

func (s *Service) notify(scope, message string, kind notify.Kind) {
	if s.center != nil && scope != "" {
		s.center.Push(scope, message, kind)
	}
}

// statusChangeMessage is what the request owner sees after a manager acts.
func statusChangeMessage(pr *domain.PurchaseRequest, from, to domain.RequestStatus, comment string) string {
	msg := fmt.Sprintf("Статус вашей заявки на %s изменен с '%s' на '%s'",
		pr.CarTitle(), statusLabels[from], statusLabels[to])
	if comment != "" {
		msg += ". Комментарий менеджера: " + comment
	}
	return msg
}

// Create files a request for an unsold car on behalf of userID.
func (s *Service) Create(ctx context.Context, scope string, userID int64, req CreateRequest) (*domain.PurchaseRequest, error) {
	req.ContactName = strings.TrimSpace(req.ContactName)
	req.ContactPhone = strings.TrimSpace(req.ContactPhone)
	req.ContactEmail = strings.TrimSpace(req.ContactEmail)
	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	car, err := s.cars.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, catalog.ErrCarNotFound) || errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	if car.IsSold {
		return nil, ErrCarSold
	}

	pr := &domain.PurchaseRequest{
		UserID:       userID,
		CarID:        car.ID,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Message:      strings.TrimSpace(req.Message),
		Status:       domain.RequestPending,
		ClientScope:  scope,
	}
	if err := s.requests.Create(ctx, pr); err != nil {
		return nil, err
	}
	pr.Car = car

	s.log.Info("purchase request created",
		zap.Int64("request_id", pr.ID),
		zap.Int64("car_id", car.ID),
		zap.Int64("user_id", userID),
	)
	s.notify(scope, msgCreated, notify.KindSuccess)
	return pr, nil
}

// List returns the caller's own requests; staff see everyone's.
func (s *Service) List(ctx context.Context, userID int64, role domain.UserRole) ([]domain.PurchaseRequest, error) {
	if role.IsManager() {
		return s.requests.List(ctx, 0)
	}
	return s.requests.List(ctx, userID)
}

// UpdateStatus is for managers; role checks happen in middleware. scope is
// the manager's own client scope; the owner is notified in the scope the
// request was filed from.
func (s *Service) UpdateStatus(ctx context.Context, scope string, id int64, req UpdateStatusRequest) (*domain.PurchaseRequest, error) {
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	req.ManagerComment = strings.TrimSpace(req.ManagerComment)
	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	pr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	old := pr.Status

	if err := s.requests.UpdateStatus(ctx, id, req.Status, req.ManagerComment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	pr.Status = req.Status
	pr.ManagerComment = req.ManagerComment

	s.log.Info("purchase request status changed",
		zap.Int64("request_id", id),
		zap.String("from", string(old)),
		zap.String("to", string(req.Status)),
	)
	s.notify(pr.ClientScope, statusChangeMessage(pr, old, req.Status, req.ManagerComment), notify.KindInfo)
	s.notify(scope, msgStatusUpdated, notify.KindSuccess)
	return pr, nil
}
