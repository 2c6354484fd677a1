package reviewrequest

import (
	"context"
	"io"

	"safelogist/internal/domain"
)

// RequestRepository — only the methods the review request service uses
type RequestRepository interface {
	Create(ctx context.Context, rq *domain.ReviewRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ReviewRequest, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.ReviewRequest, error)
	GetByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.ReviewRequest, int64, error)
	TransitionStatus(ctx context.Context, id int64, from, to domain.RequestStatus, adminComment string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ReviewWriter interface {
	Create(ctx context.Context, rv *domain.Review) error
}

// CompanyStats recomputes the denormalized per-company aggregates.
type CompanyStats interface {
	RecomputeStats(ctx context.Context, name string) error
}

type AttachmentStore interface {
	Save(r io.Reader, contentType, originalName string) (string, string, error)
	Remove(path string)
}

type NotificationSender interface {
	Notify(ctx context.Context, event string, fields map[string]any) bool
}
