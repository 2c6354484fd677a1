package review

import (
	"context"

	"safelogist/internal/domain"
)

type ReviewRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetBySubject(ctx context.Context, subject string, limit, offset int) ([]domain.Review, int64, error)
	SearchSubjects(ctx context.Context, query string, limit int) ([]string, error)
}
