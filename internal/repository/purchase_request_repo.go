package repository

import (
	"context"

	"gorm.io/gorm"

	"autosalon/internal/domain"
)

type PurchaseRequestRepository struct {
	db *gorm.DB
}

func NewPurchaseRequestRepository(db *gorm.DB) *PurchaseRequestRepository {
	return &PurchaseRequestRepository{db: db}
}

func (r *PurchaseRequestRepository) Create(ctx context.Context, pr *domain.PurchaseRequest) error {
	if pr.Status == "" {
		pr.Status = domain.RequestPending
	}
	return translate(r.db.WithContext(ctx).Create(pr).Error)
}

func (r *PurchaseRequestRepository) GetByID(ctx context.Context, id int64) (*domain.PurchaseRequest, error) {
	var pr domain.PurchaseRequest
	err := r.db.WithContext(ctx).
		Preload("Car").Preload("Car.Brand").Preload("User").
		First(&pr, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &pr, nil
}

// List returns requests newest first; userID 0 means every user.
func (r *PurchaseRequestRepository) List(ctx context.Context, userID int64) ([]domain.PurchaseRequest, error) {
	return r.Recent(ctx, userID, 0)
}

// Recent is List capped at limit rows; limit 0 means no cap.
func (r *PurchaseRequestRepository) Recent(ctx context.Context, userID int64, limit int) ([]domain.PurchaseRequest, error) {
	q := r.db.WithContext(ctx).
		Preload("Car").Preload("Car.Brand").Preload("User").
		Order("created_at DESC").Order("id DESC")
	if userID > 0 {
		q = q.Where("user_id = ?", userID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []domain.PurchaseRequest
	err := q.Find(&out).Error
	return out, err
}

// Count counts requests of userID (0 = everyone), optionally only those in
// one of statuses.
func (r *PurchaseRequestRepository) Count(ctx context.Context, userID int64, statuses ...domain.RequestStatus) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.PurchaseRequest{})
	if userID > 0 {
		q = q.Where("user_id = ?", userID)
	}
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *PurchaseRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, comment string) error {
	res := r.db.WithContext(ctx).Model(&domain.PurchaseRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          status,
			"manager_comment": comment,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
