package errors

import "errors"

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientInput = errors.New("invalid client input")
)
