package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/footfallz/validation-server/pkg/validate"
)

type emailArgs struct {
	Email string `json:"email"`
}

type phoneArgs struct {
	PhoneNumber string `json:"phone_number"`
}

type urlArgs struct {
	URL string `json:"url"`
}

type regexArgs struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

func decodeArgs[T any](raw json.RawMessage) (T, error) {
	var args T
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return args, nil
}

// RegisterValidators wires the four validation tools into r under their fixed
// names. Registration is explicit: callers own the registry handle, and
// nothing registers itself as an import side effect.
func RegisterValidators(r *Registry) error {
	for _, t := range []Tool{
		{
			Name:        "validate_email",
			Description: "Validate email address format against a simplified RFC 5322 grammar.",
			Params: []Param{
				{Name: "email", Type: "string", Description: "Email address to validate", Required: true},
			},
			Handler: func(_ context.Context, raw json.RawMessage) (any, error) {
				args, err := decodeArgs[emailArgs](raw)
				if err != nil {
					return nil, err
				}
				return validate.Email(args.Email), nil
			},
		},
		{
			Name:        "validate_phone",
			Description: "Validate phone number in E.164 international format.",
			Params: []Param{
				{Name: "phone_number", Type: "string", Description: "Phone number to validate, starting with +", Required: true},
			},
			Handler: func(_ context.Context, raw json.RawMessage) (any, error) {
				args, err := decodeArgs[phoneArgs](raw)
				if err != nil {
					return nil, err
				}
				return validate.Phone(args.PhoneNumber), nil
			},
		},
		{
			Name:        "validate_url",
			Description: "Validate URL format, allowing HTTP and HTTPS schemes only.",
			Params: []Param{
				{Name: "url", Type: "string", Description: "URL to validate", Required: true},
			},
			Handler: func(_ context.Context, raw json.RawMessage) (any, error) {
				args, err := decodeArgs[urlArgs](raw)
				if err != nil {
					return nil, err
				}
				return validate.URL(args.URL), nil
			},
		},
		{
			Name:        "validate_regex",
			Description: "Validate text against a custom regex pattern with optional flags (i, m, s, x, a).",
			Params: []Param{
				{Name: "text", Type: "string", Description: "Text to search", Required: true},
				{Name: "pattern", Type: "string", Description: "Regular expression pattern", Required: true},
				{Name: "flags", Type: "string", Description: "Optional flag letters: i, m, s, x, a", Required: false},
			},
			Handler: func(_ context.Context, raw json.RawMessage) (any, error) {
				args, err := decodeArgs[regexArgs](raw)
				if err != nil {
					return nil, err
				}
				return validate.Regex(args.Text, args.Pattern, args.Flags), nil
			},
		},
	} {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}
