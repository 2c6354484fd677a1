package admin

import (
	"context"
	"errors"
	"strings"

	"safelogist/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	userRepo UserRepository
}

func NewService(userRepo UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// -------------------- Statistics --------------------

type PlatformStats struct {
	TotalUsers      int64 `json:"total_users"`
	ActiveUsers     int64 `json:"active_users"`
	TotalCompanies  int64 `json:"total_companies"`
	VerifiedOwners  int64 `json:"verified_owners"`
	TotalReviews    int64 `json:"total_reviews"`
	PendingRequests int64 `json:"pending_requests"`
	PendingClaims   int64 `json:"pending_claims"`
}

func (s *Service) GetStats(ctx context.Context) (*PlatformStats, error) {
	db := s.userRepo.DB().WithContext(ctx)
	stats := &PlatformStats{}

	if err := db.Table("users").Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Table("users").Where("is_active = ?", true).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Table("companies").Count(&stats.TotalCompanies).Error; err != nil {
		return nil, err
	}
	if err := db.Table("companies").Where("owner_user_id IS NOT NULL").Count(&stats.VerifiedOwners).Error; err != nil {
		return nil, err
	}
	if err := db.Table("reviews").Count(&stats.TotalReviews).Error; err != nil {
		return nil, err
	}
	if err := db.Table("review_requests").Where("status = ?", domain.StatusPending).Count(&stats.PendingRequests).Error; err != nil {
		return nil, err
	}
	if err := db.Table("company_claims").Where("status = ?", domain.StatusPending).Count(&stats.PendingClaims).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// -------------------- Users --------------------

func (s *Service) GetUsers(ctx context.Context, role, search string, page, limit int) ([]domain.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := s.userRepo.DB().WithContext(ctx).Table("users")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(company_name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}

	return users, total, nil
}

func (s *Service) BlockUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.setActive(ctx, userID, false)
}

func (s *Service) UnblockUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.setActive(ctx, userID, true)
}

func (s *Service) setActive(ctx context.Context, userID int64, active bool) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
