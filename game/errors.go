package game

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrInvalidSnapshot      = errors.New("invalid board snapshot")
	ErrAborted              = errors.New("game aborted before it was decided")
)
