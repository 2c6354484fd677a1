package repository

import (
	"context"

	"safelogist/internal/domain"

	"gorm.io/gorm"
)

type LandingRepository struct {
	db *gorm.DB
}

func NewLandingRepository(db *gorm.DB) *LandingRepository {
	return &LandingRepository{db: db}
}

func (r *LandingRepository) Create(ctx context.Context, b *domain.LandingBlock) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *LandingRepository) GetByID(ctx context.Context, id int64) (*domain.LandingBlock, error) {
	var b domain.LandingBlock
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *LandingRepository) GetBySlug(ctx context.Context, slug string) (*domain.LandingBlock, error) {
	var b domain.LandingBlock
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *LandingRepository) ListPublished(ctx context.Context) ([]domain.LandingBlock, error) {
	var blocks []domain.LandingBlock
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("position ASC, id ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *LandingRepository) ListAll(ctx context.Context) ([]domain.LandingBlock, error) {
	var blocks []domain.LandingBlock
	err := r.db.WithContext(ctx).
		Order("position ASC, id ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *LandingRepository) Update(ctx context.Context, b *domain.LandingBlock) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *LandingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.LandingBlock{}, id).Error
}
