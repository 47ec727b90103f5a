package errors

import "errors"

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidFileInput = errors.New("invalid file input")
	ErrFileTooLarge     = errors.New("file too large")
)
