package validate

import "regexp"

// Simplified RFC 5322 structural grammar: local@domain.tld. Quoted-string
// locals and IP-literal domains are intentionally out of scope.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email validates an email address against a simplified RFC 5322 grammar.
// The whole input must match; there is no case folding and no length limit.
func Email(email string) Result {
	if !emailPattern.MatchString(email) {
		return Result{Input: email, Message: "Invalid email format"}
	}
	return Result{Valid: true, Input: email, Message: "Valid email format"}
}
