package entities

import "errors"

// Domain errors
var (
	ErrInvalidResponse = errors.New("response must be yes or no")
)
