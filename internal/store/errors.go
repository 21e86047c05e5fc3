package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same normalized email already
	// exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookNotFound is returned when a lookup targets a book that does not
	// exist or has been soft-deleted.
	ErrBookNotFound = errors.New("book was not found")

	// ErrReservationAlreadyExists is returned when inserting a reservation
	// violates the unique (book_id, user_id) index, i.e. the user already
	// holds an active reservation for the book. The index is the
	// authoritative duplicate guard; the optimistic pre-check in the service
	// layer only covers the common case.
	ErrReservationAlreadyExists = errors.New("reservation already exists")

	// ErrStoreUnavailable is returned when the database cannot be reached
	// (connection-class failures). The HTTP layer maps it to 503 so clients
	// can tell transient infrastructure failures from logic errors.
	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
