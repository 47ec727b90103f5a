package errors

import "errors"

var (
	ErrOutletNotFound     = errors.New("outlet not found")
	ErrInvalidOutletInput = errors.New("invalid outlet input")
)
