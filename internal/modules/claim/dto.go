package claim

import "io"

type CreateClaimInput struct {
	FullName    string `json:"full_name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Position    string `json:"position,omitempty"`
	Email       string `json:"email" validate:"required,email"`
	CompanyName string `json:"company_name" validate:"required"`
}

// DocumentUpload carries the supporting ownership document.
type DocumentUpload struct {
	Body        io.Reader
	ContentType string
	FileName    string
}

type RejectInput struct {
	AdminComment string `json:"admin_comment,omitempty"`
	RejectReason string `json:"reject_reason,omitempty"`
}
