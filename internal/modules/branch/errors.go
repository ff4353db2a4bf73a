package branch

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("branch not found")
)
