package validate

// Result is the uniform outcome returned by every validator.
//
// Valid reports whether the input satisfied the rule. Input always echoes the
// submitted string verbatim, with no normalization. Message is a
// human-readable description of the outcome.
//
// The remaining fields are validator-specific: Pattern and Match are set only
// by Regex (Match is a pointer so a legitimate empty-string match survives
// JSON serialization), Details only by URL.
type Result struct {
	Valid   bool              `json:"valid"`
	Input   string            `json:"input"`
	Pattern string            `json:"pattern,omitempty"`
	Message string            `json:"message"`
	Match   *string           `json:"match,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}
