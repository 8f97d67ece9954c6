package validate

import "net/url"

// URL validates that the input is a well-formed HTTP or HTTPS URL with a
// non-empty host. Rejecting every other scheme (javascript:, data:, file:,
// ftp:) is a deliberate safety boundary, not an oversight.
//
// Details carries the parsed components: scheme, netloc, and path on success
// (path defaults to "/"), just the scheme on the two rejection paths, and
// nothing when the input cannot be parsed at all.
func URL(rawURL string) Result {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Result{
			Input:   rawURL,
			Message: "URL parsing error: " + err.Error(),
			Details: map[string]string{},
		}
	}

	if u.Host == "" {
		return Result{
			Input:   rawURL,
			Message: "Invalid URL: missing domain",
			Details: map[string]string{"scheme": schemeOrNone(u.Scheme)},
		}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return Result{
			Input:   rawURL,
			Message: "Invalid URL scheme. Only HTTP/HTTPS allowed",
			Details: map[string]string{"scheme": schemeOrNone(u.Scheme)},
		}
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	return Result{
		Valid:   true,
		Input:   rawURL,
		Message: "Valid HTTP/HTTPS URL",
		Details: map[string]string{
			"scheme": u.Scheme,
			"netloc": u.Host,
			"path":   path,
		},
	}
}

func schemeOrNone(scheme string) string {
	if scheme == "" {
		return "none"
	}
	return scheme
}
