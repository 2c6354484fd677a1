package admin

import "errors"

var ErrNotFound = errors.New("not_found")
