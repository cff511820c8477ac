package events

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrVenueNotFound = errors.New("venue not found")
	ErrNoFields      = errors.New("no fields to update")
)
