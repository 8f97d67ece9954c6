package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxJSONSize caps JSON request bodies at 1 MB.
const MaxJSONSize = 1 << 20

// JSON decodes the request body into v.
//
// The Content-Type header must declare application/json (parameters such as
// charset are allowed). Decoding is strict: unknown fields fail, and trailing
// data after the first JSON document fails.
func JSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxJSONSize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// Reject a second document or trailing garbage.
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON document", ErrInvalidJSON)
	}
	return nil
}
