// Package validate provides a small set of stateless input validators for
// common string formats: email addresses, E.164 phone numbers, HTTP/HTTPS
// URLs, and caller-supplied regular expressions.
//
// Every validator is a pure function mapping its arguments to a Result value.
// Nothing in the package holds mutable state: the fixed patterns are compiled
// once at package initialization, and each call constructs a fresh Result, so
// any number of calls may run concurrently without coordination. Validators
// never return an error and never panic on malformed input; every outcome,
// including pattern compile failures and URL parse failures, is reported as a
// Result with Valid set to false and a descriptive Message.
//
// # Usage
//
//	res := validate.Email("user@example.com")
//	if res.Valid {
//	    // res.Message == "Valid email format"
//	}
//
//	res = validate.Regex("Hello123", `\d+`, "")
//	if res.Valid {
//	    // *res.Match == "123"
//	}
//
// The custom-regex validator is the only one that accepts an
// attacker-controlled grammar. It is backed by Go's regexp package, whose RE2
// engine guarantees linear-time matching, and it additionally caps the
// accepted pattern size, so adversarial patterns cannot cause unbounded work.
package validate
