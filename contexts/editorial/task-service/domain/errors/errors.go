package errors

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidTaskInput = errors.New("invalid task input")
	ErrInvalidStatus    = errors.New("unknown task status")
	ErrCommentRequired  = errors.New("comment required for backward or lateral moves")
	ErrTaskNotTakeable  = errors.New("can only take new tasks")
	ErrNoUndoAvailable  = errors.New("no undo available (expired or already used)")
)
