package models

import "time"

// ReservationStateReserved is the initial (and currently only) reservation
// state. Cancellation and fulfilment transitions are not implemented yet.
const ReservationStateReserved = "reserved"

// Reservation links a user to a book they have reserved. At most one
// reservation may exist per (book, user) pair; the database enforces this
// with a unique index, the service layer checks it optimistically first.
type Reservation struct {
	// ID is the unique identifier of the reservation (UUID, server-assigned).
	ID string `json:"id"`

	// BookID and UserID reference the reserved book and the reserving user.
	BookID string `json:"book_id"`
	UserID string `json:"user_id"`

	// State is ReservationStateReserved on creation.
	State string `json:"state"`

	// ReservationDate is the UTC timestamp the reservation was created.
	ReservationDate time.Time `json:"reservation_date"`
}

// ReservationUser carries the display fields of the reserving user as joined
// into a reservation listing. Only non-sensitive name fields are included.
type ReservationUser struct {
	Forenames string `json:"forenames"`
	Surname   string `json:"surname"`
}

// ReservationListItem is one row of the admin reservation listing: the
// reservation itself joined against the reserving user's display name.
type ReservationListItem struct {
	ID     string          `json:"id"`
	State  string          `json:"state"`
	User   ReservationUser `json:"user"`
	BookID string          `json:"book_id"`
	Links  Links           `json:"links"`
}

// ReservationRow is the raw join row returned by the reservation store.
// UserFound is false when the referenced user record no longer exists
// (an orphaned reference); callers skip such rows and log a diagnostic.
type ReservationRow struct {
	Reservation
	User      ReservationUser
	UserFound bool
}

// ReservationLinks builds the canonical relative link set for a reservation
// on the given book.
func ReservationLinks(bookID string) Links {
	return Links{
		"self": "/books/" + bookID + "/reservations",
		"book": "/books/" + bookID,
	}
}

// TableName returns the name of the database table
// associated with the Reservation model.
func (r Reservation) TableName() string {
	return "reservations"
}
