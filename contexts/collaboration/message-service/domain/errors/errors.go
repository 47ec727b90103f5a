package errors

import "errors"

var (
	ErrMessageNotFound     = errors.New("message not found")
	ErrInvalidMessageInput = errors.New("invalid message input")
)
