package repository

import (
	"context"

	"safelogist/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	var c domain.Company
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByMinReviewID resolves a company by its client-facing identifier.
func (r *CompanyRepository) GetByMinReviewID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	if err := r.db.WithContext(ctx).Where("min_review_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Save upserts a company row keyed by name.
func (r *CompanyRepository) Save(ctx context.Context, c *domain.Company) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		Create(c).Error
}

// RecomputeStats re-derives reviews_count and min_review_id for a company name
// from live review rows in a single upsert statement. A row is created only if
// at least one review exists for the name; an existing row is updated in place.
// Running this as one statement avoids the read-modify-write race between
// concurrent approvals for the same company.
func (r *CompanyRepository) RecomputeStats(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO companies (name, reviews_count, min_review_id, created_at, updated_at)
		SELECT ?, COUNT(*), MIN(id), CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
		FROM reviews WHERE subject = ?
		HAVING COUNT(*) > 0
		ON CONFLICT (name) DO UPDATE SET
			reviews_count = excluded.reviews_count,
			min_review_id = excluded.min_review_id,
			updated_at    = CURRENT_TIMESTAMP`,
		name, name,
	).Error
}

// List returns companies ordered by review count, optionally verified only.
func (r *CompanyRepository) List(ctx context.Context, verifiedOnly bool, limit, offset int) ([]domain.Company, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Company{})
	if verifiedOnly {
		q = q.Where("is_verified = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []domain.Company
	if err := q.
		Order("reviews_count DESC, name ASC").
		Limit(limit).
		Offset(offset).
		Find(&companies).Error; err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

// AllNames returns every company name with its min_review_id (sitemap feed).
func (r *CompanyRepository) AllNames(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	err := r.db.WithContext(ctx).
		Select("name", "min_review_id", "updated_at").
		Order("min_review_id ASC").
		Find(&companies).Error
	return companies, err
}

func (r *CompanyRepository) DB() *gorm.DB { return r.db }
