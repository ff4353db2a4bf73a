package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrSlotConflict = errors.New("requested interval is already occupied")
	ErrNotFound     = errors.New("booking not found")
	ErrForbidden    = errors.New("forbidden")
)
