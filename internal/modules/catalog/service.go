package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/repository"
)

const (
	PageSize     = 6
	SimilarLimit = 3
)

var ErrCarNotFound = errors.New("car not found")

type CarRepository interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	List(ctx context.Context, f repository.CarFilter) ([]domain.Car, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	Similar(ctx context.Context, car *domain.Car, limit int) ([]domain.Car, error)
}

// ViewRecorder remembers which cars a client opened.
type ViewRecorder interface {
	RecordView(ctx context.Context, scope string, car domain.CarInput) bool
}

type Service struct {
	cars    CarRepository
	history ViewRecorder
	log     *zap.Logger
}

func NewService(cars CarRepository, history ViewRecorder, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{cars: cars, history: history, log: log}
}

// Page is one page of the catalog listing.
type Page struct {
	Cars       []domain.Car
	Page       int
	TotalPages int
	Total      int64
}

func (s *Service) Brands(ctx context.Context) ([]domain.Brand, error) {
	return s.cars.ListBrands(ctx)
}

// ListCars returns the requested page. Pages below 1 become the first page,
// pages past the end become the last one.
func (s *Service) ListCars(ctx context.Context, f repository.CarFilter, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	f.Limit = PageSize
	f.Offset = (page - 1) * PageSize

	cars, total, err := s.cars.List(ctx, f)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
		f.Offset = (page - 1) * PageSize
		if cars, total, err = s.cars.List(ctx, f); err != nil {
			return nil, err
		}
	}

	return &Page{Cars: cars, Page: page, TotalPages: totalPages, Total: total}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return car, nil
}

// Detail is a car page: the car itself plus similar offers of the same brand.
type Detail struct {
	Car     *domain.Car
	Similar []domain.Car
}

// Detail loads the car page and records the view in scope's history. A
// failed history write does not fail the page.
func (s *Service) Detail(ctx context.Context, scope string, id int64) (*Detail, error) {
	car, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	similar, err := s.cars.Similar(ctx, car, SimilarLimit)
	if err != nil {
		s.log.Warn("similar cars lookup failed", zap.Int64("car_id", id), zap.Error(err))
		similar = nil
	}

	if s.history != nil && scope != "" {
		s.history.RecordView(ctx, scope, car.Input())
	}

	return &Detail{Car: car, Similar: similar}, nil
}
