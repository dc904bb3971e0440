package album

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]Album, error)
	GetBySlug(ctx context.Context, slug string) (*Album, error)
	GetContent(ctx context.Context, slug string) ([]Content, error)
	Exists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, a *Album) error
	Update(ctx context.Context, a *Album) error
	Delete(ctx context.Context, slug string) error
	AddContent(ctx context.Context, c *Content) error
	RemoveContent(ctx context.Context, slug, imgURL string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Album, error) {
	var albums []Album
	err := r.db.WithContext(ctx).Order("date DESC").Find(&albums).Error
	return albums, err
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Album, error) {
	var a Album
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAlbumNotFound
	}
	return &a, err
}

func (r *repository) GetContent(ctx context.Context, slug string) ([]Content, error) {
	var content []Content
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Find(&content).Error
	return content, err
}

func (r *repository) Exists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Album{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, a *Album) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Album) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete removes the album row and its content rows in one transaction.
func (r *repository) Delete(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", slug).Delete(&Content{}).Error; err != nil {
			return err
		}
		result := tx.Where("slug = ?", slug).Delete(&Album{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlbumNotFound
		}
		return nil
	})
}

func (r *repository) AddContent(ctx context.Context, c *Content) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) RemoveContent(ctx context.Context, slug, imgURL string) error {
	result := r.db.WithContext(ctx).Where("slug = ? AND img_url = ?", slug, imgURL).Delete(&Content{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}
