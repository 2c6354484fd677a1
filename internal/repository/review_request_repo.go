package repository

import (
	"context"
	"time"

	"safelogist/internal/domain"

	"gorm.io/gorm"
)

type ReviewRequestRepository struct {
	db *gorm.DB
}

func NewReviewRequestRepository(db *gorm.DB) *ReviewRequestRepository {
	return &ReviewRequestRepository{db: db}
}

func (r *ReviewRequestRepository) Create(ctx context.Context, rq *domain.ReviewRequest) error {
	return r.db.WithContext(ctx).Create(rq).Error
}

func (r *ReviewRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ReviewRequest, error) {
	var rq domain.ReviewRequest
	if err := r.db.WithContext(ctx).First(&rq, id).Error; err != nil {
		return nil, err
	}
	return &rq, nil
}

func (r *ReviewRequestRepository) GetByUser(ctx context.Context, userID int64) ([]domain.ReviewRequest, error) {
	var rqs []domain.ReviewRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rqs).Error
	return rqs, err
}

func (r *ReviewRequestRepository) GetByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.ReviewRequest, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.ReviewRequest{}).Where("status = ?", status)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rqs []domain.ReviewRequest
	if err := q.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&rqs).Error; err != nil {
		return nil, 0, err
	}
	return rqs, total, nil
}

// TransitionStatus performs a conditional update that only succeeds when the
// row is still in the expected state. The returned bool is false when another
// transition won the race or the row is already terminal.
func (r *ReviewRequestRepository) TransitionStatus(ctx context.Context, id int64, from, to domain.RequestStatus, adminComment string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.ReviewRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":        to,
			"admin_comment": adminComment,
			"updated_at":    time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *ReviewRequestRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.ReviewRequest{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *ReviewRequestRepository) DB() *gorm.DB { return r.db }
