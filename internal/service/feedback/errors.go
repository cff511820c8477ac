package feedback

import "errors"

var (
	ErrAttendanceRequired = errors.New("attendance not marked for this event")
	ErrDuplicateFeedback  = errors.New("feedback already submitted")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)
