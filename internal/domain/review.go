package domain

import "time"

const (
	ReviewStatusPublished = "published"

	// SourceInternal marks reviews promoted from approved review requests.
	SourceInternal = "SafeLogist"
)

// Review is a published review. Immutable after creation: moderation happens
// on ReviewRequest, never here, and the core workflow never deletes rows.
type Review struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey"`
	// Subject is the reviewed company name. Plain string, not a foreign key;
	// companies are matched by exact name.
	Subject string `json:"subject" gorm:"column:subject;index"`
	// ReviewID is the unique business key. Format depends on origin:
	// import sources bring their own, promoted requests use "USER-{uid}-{rid}".
	ReviewID   string    `json:"review_id" gorm:"column:review_id;uniqueIndex"`
	Comment    string    `json:"comment" gorm:"column:comment"`
	Reviewer   string    `json:"reviewer" gorm:"column:reviewer"`
	Rating     int       `json:"rating" gorm:"column:rating"`
	Status     string    `json:"status" gorm:"column:status"`
	ReviewDate time.Time `json:"review_date" gorm:"column:review_date"`
	Source     string    `json:"source" gorm:"column:source"`

	// Registry enrichment, present on imported rows only.
	Jurisdiction   string `json:"jurisdiction,omitempty" gorm:"column:jurisdiction"`
	LegalForm      string `json:"legal_form,omitempty" gorm:"column:legal_form"`
	TaxID          string `json:"tax_id,omitempty" gorm:"column:tax_id"`
	RegistrationID string `json:"registration_id,omitempty" gorm:"column:registration_id"`
	LegalAddress   string `json:"legal_address,omitempty" gorm:"column:legal_address"`

	// Financial report extract (Moldova reports import).
	ReportYear int     `json:"report_year,omitempty" gorm:"column:report_year"`
	Revenue    float64 `json:"revenue,omitempty" gorm:"column:revenue"`
	Profit     float64 `json:"profit,omitempty" gorm:"column:profit"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Review) TableName() string { return "reviews" }
