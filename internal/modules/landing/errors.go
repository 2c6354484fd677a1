package landing

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("not_found")
	ErrSlugExists     = errors.New("slug_exists")
)
