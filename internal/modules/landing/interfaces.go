package landing

import (
	"context"

	"safelogist/internal/domain"
)

type LandingRepository interface {
	Create(ctx context.Context, b *domain.LandingBlock) error
	GetByID(ctx context.Context, id int64) (*domain.LandingBlock, error)
	GetBySlug(ctx context.Context, slug string) (*domain.LandingBlock, error)
	Update(ctx context.Context, b *domain.LandingBlock) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.LandingBlock, error)
	ListPublished(ctx context.Context) ([]domain.LandingBlock, error)
}
