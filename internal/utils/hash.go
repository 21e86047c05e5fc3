package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword computes a bcrypt digest of the given plaintext password using
// the default cost. Each call produces a different digest because bcrypt
// embeds a random salt; use CheckPasswordHash to verify.
//
// Returns the digest string or an error if the password exceeds bcrypt's
// 72-byte input limit.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the stored
// bcrypt digest. A mismatch returns false, never an error; the comparison is
// constant-time within bcrypt itself.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
