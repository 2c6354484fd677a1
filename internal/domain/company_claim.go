package domain

import "time"

// CompanyClaim is a pending ownership assertion. It is self-contained: the
// applicant does not need an account at submission time, a user is resolved or
// provisioned by email when the claim is approved.
type CompanyClaim struct {
	ID           int64  `json:"id" gorm:"column:id;primaryKey"`
	FullName     string `json:"full_name" gorm:"column:full_name"`
	Phone        string `json:"phone" gorm:"column:phone"`
	Position     string `json:"position,omitempty" gorm:"column:position"`
	Email        string `json:"email" gorm:"column:email;index"`
	CompanyName  string `json:"company_name" gorm:"column:company_name;index"`
	DocumentPath string `json:"-" gorm:"column:document_path"`
	DocumentName string `json:"document_name" gorm:"column:document_name"`

	Status       RequestStatus `json:"status" gorm:"column:status;index"`
	AdminComment string        `json:"admin_comment,omitempty" gorm:"column:admin_comment"`
	RejectReason string        `json:"reject_reason,omitempty" gorm:"column:reject_reason"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (CompanyClaim) TableName() string { return "company_claims" }
