package reviewrequest

import "io"

type CreateRequestInput struct {
	TargetCompany string `json:"target_company" validate:"required"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment" validate:"required"`
}

// AttachmentUpload carries an optional evidence file from the transport layer.
type AttachmentUpload struct {
	Body        io.Reader
	ContentType string
	FileName    string
}

type ModerateInput struct {
	AdminComment string `json:"admin_comment,omitempty"`
}
