package company

import (
	"context"

	"safelogist/internal/domain"
)

type CompanyRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Company, error)
	GetByMinReviewID(ctx context.Context, id int64) (*domain.Company, error)
	Save(ctx context.Context, c *domain.Company) error
	RecomputeStats(ctx context.Context, name string) error
	List(ctx context.Context, verifiedOnly bool, limit, offset int) ([]domain.Company, int64, error)
}
