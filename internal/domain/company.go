package domain

import "time"

// Company is a denormalized per-name cache over the reviews table.
// The primary key is the company name itself: reviews reference companies
// only by exact string match on their subject, there is no surrogate id.
// ReviewsCount and MinReviewID are always recomputed from live review rows,
// never adjusted incrementally.
type Company struct {
	Name         string `json:"name" gorm:"column:name;primaryKey"`
	ReviewsCount int64  `json:"reviews_count" gorm:"column:reviews_count"`
	// MinReviewID is the lowest review id for this name. It doubles as the
	// client-facing company identifier in generated URLs.
	MinReviewID int64  `json:"min_review_id" gorm:"column:min_review_id"`
	OwnerUserID *int64 `json:"owner_user_id,omitempty" gorm:"column:owner_user_id"`
	IsVerified  bool   `json:"is_verified" gorm:"column:is_verified"`

	// Editable profile fields (owner only).
	LogoURL      string `json:"logo_url,omitempty" gorm:"column:logo_url"`
	Description  string `json:"description,omitempty" gorm:"column:description"`
	Website      string `json:"website,omitempty" gorm:"column:website"`
	ContactEmail string `json:"contact_email,omitempty" gorm:"column:contact_email"`
	ContactPhone string `json:"contact_phone,omitempty" gorm:"column:contact_phone"`

	// Registry enrichment, copied once from review data on claim approval.
	LegalForm      string `json:"legal_form,omitempty" gorm:"column:legal_form"`
	TaxID          string `json:"tax_id,omitempty" gorm:"column:tax_id"`
	RegistrationID string `json:"registration_id,omitempty" gorm:"column:registration_id"`
	Jurisdiction   string `json:"jurisdiction,omitempty" gorm:"column:jurisdiction"`
	LegalAddress   string `json:"legal_address,omitempty" gorm:"column:legal_address"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Company) TableName() string { return "companies" }
