package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("nil pointer passed to config loader")
	// ErrParse is returned when environment variables cannot be parsed into the struct.
	ErrParse = errors.New("failed to parse environment into config")
)
