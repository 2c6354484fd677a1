package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email_already_exists")
	ErrPhoneAlreadyExists = errors.New("phone_already_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountBlocked     = errors.New("account_blocked")
	ErrInvalidRole        = errors.New("invalid_role")
)
