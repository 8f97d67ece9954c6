package validate

import "regexp"

// E.164 structural grammar: "+" then 10 to 15 digits, no leading zero after
// the "+". Separators, spaces, and parentheses are not permitted.
var phonePattern = regexp.MustCompile(`^\+[1-9]\d{9,14}$`)

// Phone validates a phone number in E.164 international format.
func Phone(number string) Result {
	if !phonePattern.MatchString(number) {
		return Result{Input: number, Message: "Invalid phone format. Use E.164: +[country][number]"}
	}
	return Result{Valid: true, Input: number, Message: "Valid E.164 phone format"}
}
