package store

import (
	"context"

	"github.com/openshelf/catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts. Lookups never populate
// the password hash unless the method documents otherwise.
type UserRepository interface {
	// CreateUser inserts a new user and returns the persisted record with
	// server-assigned fields. Returns ErrEmailAlreadyExists on a duplicate
	// normalized email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given normalized email,
	// including the password hash (needed by the login flow).
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id with the password hash
	// excluded from the projection. Returns ErrNoUserWasFound when no such
	// user exists.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// BookRepository persists catalog entries. Soft-deleted books are invisible
// to every read method.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	UpdateBook(ctx context.Context, book models.Book) (models.Book, error)
	// SoftDeleteBook marks the book deleted without removing the row.
	// Returns ErrBookNotFound if no active book has the given id.
	SoftDeleteBook(ctx context.Context, id string) error
	// FindBookByID returns the active book with the given id or
	// ErrBookNotFound.
	FindBookByID(ctx context.Context, id string) (models.Book, error)
	ListActiveBooks(ctx context.Context) ([]models.Book, error)
}

// ReservationRepository persists reservations and serves the admin listing.
type ReservationRepository interface {
	// FindReservation looks up the reservation for the (bookID, userID)
	// pair. The bool result reports whether a reservation exists; an absent
	// reservation is not an error.
	FindReservation(ctx context.Context, bookID, userID string) (models.Reservation, bool, error)

	// CreateReservation inserts a new reservation. Returns
	// ErrReservationAlreadyExists when the unique (book_id, user_id) index
	// rejects the insert.
	CreateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error)

	// CountReservationsForBook counts reservations for the book whose
	// reserving user still exists.
	CountReservationsForBook(ctx context.Context, bookID string) (int, error)

	// ListReservationsForBook returns a page of reservations joined against
	// user display fields, in insertion order. Rows whose user record no
	// longer exists are returned with UserFound=false so the caller can
	// skip and log them.
	ListReservationsForBook(ctx context.Context, bookID string, offset, limit int) ([]models.ReservationRow, error)
}
