package landing

import (
	"context"
	"errors"
	"strings"

	"safelogist/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	blocks LandingRepository
}

func NewService(blocks LandingRepository) *Service {
	return &Service{blocks: blocks}
}

// Published returns the blocks shown on the public landing page, in order.
func (s *Service) Published(ctx context.Context) ([]domain.LandingBlock, error) {
	return s.blocks.ListPublished(ctx)
}

func (s *Service) All(ctx context.Context) ([]domain.LandingBlock, error) {
	return s.blocks.ListAll(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.LandingBlock, error) {
	b, err := s.blocks.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, req CreateBlockRequest) (*domain.LandingBlock, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidRequest
	}

	if _, err := s.blocks.GetBySlug(ctx, slug); err == nil {
		return nil, ErrSlugExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	b := &domain.LandingBlock{
		Slug:        slug,
		Title:       req.Title,
		Body:        req.Body,
		Position:    req.Position,
		IsPublished: req.IsPublished,
	}
	if err := s.blocks.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBlockRequest) (*domain.LandingBlock, error) {
	b, err := s.blocks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Body != nil {
		b.Body = *req.Body
	}
	if req.Position != nil {
		b.Position = *req.Position
	}
	if req.IsPublished != nil {
		b.IsPublished = *req.IsPublished
	}

	if err := s.blocks.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.blocks.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.blocks.Delete(ctx, id)
}
