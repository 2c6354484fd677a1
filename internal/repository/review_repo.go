package repository

import (
	"context"
	"strings"

	"safelogist/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) GetByReviewID(ctx context.Context, reviewID string) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).Where("review_id = ?", reviewID).First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

// GetBySubject returns published reviews for a company name, newest first.
func (r *ReviewRepository) GetBySubject(ctx context.Context, subject string, limit, offset int) ([]domain.Review, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("subject = ? AND status = ?", subject, domain.ReviewStatusPublished)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []domain.Review
	if err := q.
		Order("review_date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// SearchSubjects returns distinct company names matching the query.
func (r *ReviewRepository) SearchSubjects(ctx context.Context, query string, limit int) ([]string, error) {
	var names []string
	sv := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Distinct("subject").
		Where("LOWER(subject) LIKE ?", sv).
		Order("subject").
		Limit(limit).
		Pluck("subject", &names).Error
	return names, err
}

// EarliestBySubject returns the review with the minimum id for a company name.
func (r *ReviewRepository) EarliestBySubject(ctx context.Context, subject string) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).
		Where("subject = ?", subject).
		Order("id ASC").
		First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) DB() *gorm.DB { return r.db }
