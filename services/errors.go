package services

import (
	"errors"
)

// Category sentinels for the request boundary. Detail is attached with
// fmt.Errorf("%w: ...", ...) so controllers can branch with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
)
