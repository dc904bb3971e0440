package project

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	Exists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, slug string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).Order("priority ASC, date DESC").Find(&projects).Error
	return projects, err
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	return &p, err
}

func (r *repository) Exists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Project{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, slug string) error {
	result := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
