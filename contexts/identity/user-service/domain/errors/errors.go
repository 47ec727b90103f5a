package errors

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidUserInput = errors.New("invalid user input")
	ErrEmailTaken       = errors.New("email already registered")
	ErrForbidden        = errors.New("can only update own profile")
)
