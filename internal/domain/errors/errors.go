package errors

import "errors"

var (
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidStatus    = errors.New("invalid order status")
)
