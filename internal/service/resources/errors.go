package resources

import "errors"

var (
	ErrInvalidWindow       = errors.New("booking end must be after start")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceUnavailable = errors.New("resource unavailable")
)
