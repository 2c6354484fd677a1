package repository

import (
	"context"
	"time"

	"safelogist/internal/domain"

	"gorm.io/gorm"
)

type ClaimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) Create(ctx context.Context, cl *domain.CompanyClaim) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *ClaimRepository) GetByID(ctx context.Context, id int64) (*domain.CompanyClaim, error) {
	var cl domain.CompanyClaim
	if err := r.db.WithContext(ctx).First(&cl, id).Error; err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *ClaimRepository) GetByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.CompanyClaim, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.CompanyClaim{}).Where("status = ?", status)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var claims []domain.CompanyClaim
	if err := q.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&claims).Error; err != nil {
		return nil, 0, err
	}
	return claims, total, nil
}

// TransitionStatus is the conditional pending→terminal update; see
// ReviewRequestRepository.TransitionStatus.
func (r *ClaimRepository) TransitionStatus(ctx context.Context, id int64, from, to domain.RequestStatus, adminComment, rejectReason string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.CompanyClaim{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":        to,
			"admin_comment": adminComment,
			"reject_reason": rejectReason,
			"updated_at":    time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *ClaimRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.CompanyClaim{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *ClaimRepository) DB() *gorm.DB { return r.db }
