package service

import "errors"

var (
	// ErrEmailAndPasswordRequired is returned by registration and login when
	// either credential field is missing or empty.
	ErrEmailAndPasswordRequired = errors.New("email and password are required")

	// ErrInvalidEmail is returned by registration when the supplied email
	// fails the structural check (local-part@domain-with-TLD).
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidCredentials is returned by login for both an unknown email
	// and a wrong password. The two cases are deliberately indistinguishable
	// to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed wraps a signer failure during token issuance.
	// This is a server fault (500), not a client error.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpired is returned when a presented token's exp claim has
	// elapsed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned for every other token validation failure
	// (bad signature, malformed structure, wrong issuer, missing subject).
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrInvalidBookID is returned when a path parameter cannot be parsed as
	// a book identifier (UUID).
	ErrInvalidBookID = errors.New("invalid book id")

	// ErrMissingBookFields is returned when a catalog write omits one of the
	// required fields (title, synopsis, author).
	ErrMissingBookFields = errors.New("missing required book fields")
)
