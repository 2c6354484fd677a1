package claim

import "errors"

var (
	ErrInvalidRequest         = errors.New("invalid_request")
	ErrNotFound               = errors.New("not_found")
	ErrAlreadyApproved        = errors.New("already_approved")
	ErrInvalidStateTransition = errors.New("invalid_state_transition")
	ErrOwnershipConflict      = errors.New("ownership_conflict")
	ErrMissingDocument        = errors.New("missing_document")
)
