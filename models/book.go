package models

// Book states used for soft deletion. A deleted book stays in the table but
// is excluded from every read path, including the reservation existence check.
const (
	BookStateActive  = "active"
	BookStateDeleted = "deleted"
)

// Book is a catalog entry. The reservation subsystem only needs its identity
// and state; the remaining fields belong to the legacy catalog CRUD surface.
type Book struct {
	// ID is the unique identifier of the book (UUID, server-assigned).
	ID string `json:"id"`

	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
	Author   string `json:"author"`

	// State is BookStateActive or BookStateDeleted. Not exposed via JSON;
	// clients never see soft-deleted books.
	State string `json:"-"`

	// Links holds relative navigation paths (self, reservations, reviews).
	// The HTTP layer rewrites them to absolute URLs per request.
	Links Links `json:"links"`
}

// Links is the HATEOAS navigation map attached to API representations.
// Values are stored as relative paths and made absolute at the HTTP boundary.
type Links map[string]string

// BookLinks builds the canonical relative link set for a book id.
func BookLinks(bookID string) Links {
	return Links{
		"self":         "/books/" + bookID,
		"reservations": "/books/" + bookID + "/reservations",
		"reviews":      "/books/" + bookID + "/reviews",
	}
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}
