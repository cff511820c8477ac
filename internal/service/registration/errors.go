package registration

import "errors"

var (
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrSoldOut              = errors.New("tickets sold out")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrParticipantNotFound  = errors.New("participant not found")
)
