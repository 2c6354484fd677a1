package domain

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Terminal reports whether no further status transition is allowed.
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ReviewRequest is a user-submitted review draft awaiting moderation.
// pending is the only non-terminal state; approved/rejected requests are never
// re-transitioned (delete is a destructive operation, not a transition).
type ReviewRequest struct {
	ID     int64 `json:"id" gorm:"column:id;primaryKey"`
	UserID int64 `json:"user_id" gorm:"column:user_id;index"`
	// FromCompany is snapshotted from the author's profile at submission time
	// and is immune to later profile edits.
	FromCompany    string        `json:"from_company" gorm:"column:from_company"`
	TargetCompany  string        `json:"target_company" gorm:"column:target_company"`
	Rating         int           `json:"rating" gorm:"column:rating"`
	Comment        string        `json:"comment" gorm:"column:comment"`
	AttachmentPath string        `json:"-" gorm:"column:attachment_path"`
	AttachmentName string        `json:"attachment_name,omitempty" gorm:"column:attachment_name"`
	Status         RequestStatus `json:"status" gorm:"column:status;index"`
	AdminComment   string        `json:"admin_comment,omitempty" gorm:"column:admin_comment"`
	CreatedAt      time.Time     `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"column:updated_at"`
}

func (ReviewRequest) TableName() string { return "review_requests" }
