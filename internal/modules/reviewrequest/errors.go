package reviewrequest

import "errors"

var (
	ErrInvalidRequest         = errors.New("invalid_request")
	ErrNotFound               = errors.New("not_found")
	ErrMissingCompanyProfile  = errors.New("missing_company_profile")
	ErrCommentTooShort        = errors.New("comment_too_short")
	ErrInvalidStateTransition = errors.New("invalid_state_transition")
)
