package domain

import "errors"

var (
	// ErrInvalidInput is returned when an input snapshot falls outside its documented range
	ErrInvalidInput = errors.New("invalid input")

	// ErrColdCallingPrerequisite is returned when the cold-calling package is
	// selected without email or LinkedIn
	ErrColdCallingPrerequisite = errors.New("cold calling package requires email or linkedin")

	ErrUnknownPolicy = errors.New("unknown policy")
)
