// Package credential provides stateless validation of email format and
// password strength. It is used at registration time by callers that want
// strength enforcement; the authentication service itself does not invoke
// it, so policy can be tightened without touching the service.
package credential

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether the candidate has a plausible
// local@domain-with-dot shape. This is a format check only: no trimming,
// no case folding, no existence check.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// PasswordCheck is the result of ValidatePassword. Errors holds one message
// per violated rule, in rule order; Valid is true iff Errors is empty.
type PasswordCheck struct {
	Valid  bool
	Errors []string
}

// ValidatePassword checks the candidate against every strength rule and
// accumulates a message for each violation. Rule order is fixed (length,
// uppercase, lowercase, digit) because message ordering is part of the
// contract.
func ValidatePassword(password string) PasswordCheck {
	var errs []string

	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		errs = append(errs, "Password must contain at least one number")
	}

	return PasswordCheck{Valid: len(errs) == 0, Errors: errs}
}
