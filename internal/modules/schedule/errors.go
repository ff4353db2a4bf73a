package schedule

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("block not found")
	ErrBlockInUse = errors.New("block has bookings inside its time span")
)
