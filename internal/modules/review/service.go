package review

import (
	"context"
	"errors"
	"strings"

	"safelogist/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	reviews ReviewRepository
}

func NewService(reviews ReviewRepository) *Service {
	return &Service{reviews: reviews}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

// ListByCompany returns published reviews for a company name, newest first.
func (s *Service) ListByCompany(ctx context.Context, subject string, page, limit int) ([]domain.Review, int64, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, 0, ErrInvalidRequest
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit
	return s.reviews.GetBySubject(ctx, subject, limit, offset)
}

// SearchCompanies returns distinct company names matching the query prefix.
func (s *Service) SearchCompanies(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, ErrInvalidRequest
	}
	return s.reviews.SearchSubjects(ctx, query, 20)
}
