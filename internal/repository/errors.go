package repository

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrAlreadyRegistered   = errors.New("already registered")
	ErrSoldOut             = errors.New("tickets sold out")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrNoFields            = errors.New("no fields to update")
)
