package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one stored value in the storage_entries table.
type Entry struct {
	Scope     string    `gorm:"primaryKey;size:64"`
	Key       string    `gorm:"column:entry_key;primaryKey;size:128"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Entry) TableName() string {
	return "storage_entries"
}

// GormBackend stores values in the application database (sqlite or postgres).
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Migrate creates the storage_entries table.
func (g *GormBackend) Migrate() error {
	return g.db.AutoMigrate(&Entry{})
}

func (g *GormBackend) Get(ctx context.Context, scope, key string) ([]byte, error) {
	var e Entry
	err := g.db.WithContext(ctx).
		Where("scope = ? AND entry_key = ?", scope, key).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(e.Value), nil
}

func (g *GormBackend) Set(ctx context.Context, scope, key string, value []byte) error {
	e := Entry{Scope: scope, Key: key, Value: string(value), UpdatedAt: time.Now()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}, {Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&e).Error
}

func (g *GormBackend) Delete(ctx context.Context, scope, key string) error {
	return g.db.WithContext(ctx).
		Where("scope = ? AND entry_key = ?", scope, key).
		Delete(&Entry{}).Error
}

// PurgeOlderThan drops entries not written since cutoff. Clients that never
// come back otherwise keep their rows forever.
func (g *GormBackend) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := g.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&Entry{})
	return res.RowsAffected, res.Error
}
