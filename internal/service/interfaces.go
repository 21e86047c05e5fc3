package service

import (
	"context"

	"github.com/openshelf/catalog/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	// RegisterUser normalizes and validates the email, rejects duplicates,
	// hashes the password and persists the account with the "user" role.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and returns the matching user.
	// Unknown email and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed JWT whose subject is the user id and whose
	// role claim mirrors the user's role at issuance time.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string. Expired tokens yield
	// ErrTokenIsExpired; every other validation failure yields
	// ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// UserByID resolves a token subject to the current account record.
	// The role is read from the store, not from the token, so role changes
	// take effect immediately. Returns store.ErrNoUserWasFound for a
	// vanished account.
	UserByID(ctx context.Context, id string) (models.User, error)
}

// ReservationService implements the reservation state machine.
type ReservationService interface {
	// CreateReservation reserves the book for the user. Fails with
	// ErrInvalidBookID, store.ErrBookNotFound or
	// store.ErrReservationAlreadyExists.
	CreateReservation(ctx context.Context, bookID string, user models.User) (models.Reservation, error)

	// ListReservationsForBook returns the total count and one page of
	// reservations joined against user display names. Rows referencing a
	// vanished user are skipped and logged, never fatal.
	ListReservationsForBook(ctx context.Context, bookID string, offset, limit int) (int, []models.ReservationRow, error)
}

// BookService manages the legacy catalog CRUD surface.
type BookService interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	UpdateBook(ctx context.Context, id string, book models.Book) (models.Book, error)
	DeleteBook(ctx context.Context, id string) error
	GetBook(ctx context.Context, id string) (models.Book, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
}
