package service

import (
	"regexp"
	"strings"
)

// emailPattern is a structural check, not a full RFC 5322 parser: one
// non-empty local part, an "@", and a domain that contains at least one dot
// with non-empty labels on both sides. It rejects the common malformed
// shapes (missing TLD, trailing dot, embedded whitespace).
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail applies the single normalization step used everywhere:
// trim surrounding whitespace and lower-case. It runs exactly once, at the
// entry of the registration and login flows, so the duplicate check and the
// stored value always agree.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail reports whether the (already normalized) email passes the
// structural check.
func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
