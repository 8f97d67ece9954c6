package binder

import "errors"

var (
	// ErrMissingContentType is returned when the request carries no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
	// ErrUnsupportedMediaType is returned when the media type is not application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrInvalidJSON is returned when the body cannot be decoded into the target value.
	ErrInvalidJSON = errors.New("invalid JSON request body")
)
