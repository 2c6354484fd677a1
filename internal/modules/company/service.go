package company

import (
	"context"
	"errors"
	"strings"

	"safelogist/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	companies CompanyRepository
}

func NewService(companies CompanyRepository) *Service {
	return &Service{companies: companies}
}

func (s *Service) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidRequest
	}
	c, err := s.companies.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// GetByPublicID resolves the client-facing company identifier, which is the
// minimum review id for the company name.
func (s *Service) GetByPublicID(ctx context.Context, id int64) (*domain.Company, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	c, err := s.companies.GetByMinReviewID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, verifiedOnly bool, page, limit int) ([]domain.Company, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit
	return s.companies.List(ctx, verifiedOnly, limit, offset)
}

// UpdateProfile lets the confirmed owner edit the presentational fields.
// Aggregates, verification and registry fields are not editable here.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, name string, in UpdateProfileInput) (*domain.Company, error) {
	c, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if c.OwnerUserID == nil || *c.OwnerUserID != userID {
		return nil, ErrForbidden
	}

	if in.LogoURL != nil {
		c.LogoURL = *in.LogoURL
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Website != nil {
		c.Website = *in.Website
	}
	if in.ContactEmail != nil {
		c.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		c.ContactPhone = *in.ContactPhone
	}

	if err := s.companies.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RecomputeStats re-derives the denormalized aggregates for one company name.
// Invoked after any operation that changes the review set for that name.
func (s *Service) RecomputeStats(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidRequest
	}
	return s.companies.RecomputeStats(ctx, name)
}
