package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"autosalon/internal/domain"
)

// CarFilter — параметры поиска по каталогу. Нулевые значения не фильтруют.
type CarFilter struct {
	BrandID      int64
	Search       string
	MinPrice     int64
	MaxPrice     int64
	MinYear      int
	MaxYear      int
	Transmission domain.Transmission
	FuelType     domain.FuelType
	Limit        int
	Offset       int
}

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

// List returns unsold cars matching f, newest first, plus the total count
// before pagination.
func (r *CarRepository) List(ctx context.Context, f CarFilter) ([]domain.Car, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Car{}).Where("cars.is_sold = ?", false)

	if f.BrandID > 0 {
		q = q.Where("cars.brand_id = ?", f.BrandID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Joins("JOIN brands ON brands.id = cars.brand_id").
			Where("LOWER(cars.model) LIKE ? OR LOWER(cars.description) LIKE ? OR LOWER(brands.name) LIKE ?", like, like, like)
	}
	if f.MinPrice > 0 {
		q = q.Where("cars.price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("cars.price <= ?", f.MaxPrice)
	}
	if f.MinYear > 0 {
		q = q.Where("cars.year >= ?", f.MinYear)
	}
	if f.MaxYear > 0 {
		q = q.Where("cars.year <= ?", f.MaxYear)
	}
	if f.Transmission != "" {
		q = q.Where("cars.transmission = ?", f.Transmission)
	}
	if f.FuelType != "" {
		q = q.Where("cars.fuel_type = ?", f.FuelType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Preload("Brand").Preload("Images").Order("cars.created_at DESC").Order("cars.id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var cars []domain.Car
	if err := q.Find(&cars).Error; err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	var car domain.Car
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_main DESC").Order("uploaded_at ASC")
		}).
		First(&car, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &car, nil
}

// Similar returns up to limit unsold cars of the same brand, excluding car.
func (r *CarRepository) Similar(ctx context.Context, car *domain.Car, limit int) ([]domain.Car, error) {
	var cars []domain.Car
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Images").
		Where("brand_id = ? AND id <> ? AND is_sold = ?", car.BrandID, car.ID, false).
		Order("RANDOM()").
		Limit(limit).
		Find(&cars).Error
	return cars, err
}

func (r *CarRepository) CreateBrand(ctx context.Context, b *domain.Brand) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	return translate(r.db.WithContext(ctx).Create(car).Error)
}
