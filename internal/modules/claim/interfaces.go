package claim

import (
	"context"
	"io"

	"safelogist/internal/domain"
)

type ClaimRepository interface {
	Create(ctx context.Context, cl *domain.CompanyClaim) error
	GetByID(ctx context.Context, id int64) (*domain.CompanyClaim, error)
	GetByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.CompanyClaim, int64, error)
	TransitionStatus(ctx context.Context, id int64, from, to domain.RequestStatus, adminComment, rejectReason string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserStore — lookup and provisioning of claimant accounts
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
}

// CompanyStore — company profile lookup and upsert
type CompanyStore interface {
	GetByName(ctx context.Context, name string) (*domain.Company, error)
	Save(ctx context.Context, c *domain.Company) error
}

// ReviewReader provides the earliest review for registry-field enrichment.
type ReviewReader interface {
	EarliestBySubject(ctx context.Context, subject string) (*domain.Review, error)
}

type AttachmentStore interface {
	Save(r io.Reader, contentType, originalName string) (string, string, error)
	Remove(path string)
}

type NotificationSender interface {
	Notify(ctx context.Context, event string, fields map[string]any) bool
}
