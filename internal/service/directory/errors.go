package directory

import "errors"

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrSRNTaken        = errors.New("srn already registered")
)
