package asset

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository records which bytes on disk belong to which owner. The
// pipeline calls Create exactly once per stored upload, after the bytes
// are durable.
type Repository interface {
	Create(ctx context.Context, a *Asset) error
	GetByID(ctx context.Context, id string) (*Asset, error)
	ListBySlug(ctx context.Context, slug string) ([]*Asset, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Asset, error) {
	var a Asset
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &a, err
}

func (r *repository) ListBySlug(ctx context.Context, slug string) ([]*Asset, error) {
	var assets []*Asset
	err := r.db.WithContext(ctx).Where("owner_slug = ?", slug).Order("created_at DESC").Find(&assets).Error
	return assets, err
}

func (r *repository) DeleteBySlug(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Where("owner_slug = ?", slug).Delete(&Asset{}).Error
}
