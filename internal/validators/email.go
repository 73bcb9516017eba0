package validators

import "regexp"

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail does a syntactic check only; no MX or DNS lookups.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
