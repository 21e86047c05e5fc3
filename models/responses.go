package models

// ErrorResponse is the uniform JSON error envelope returned by every failing
// endpoint. The message is human-readable; the HTTP status code carries the
// machine-readable classification (401 vs 403 and so on).
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterResponse is the body of a successful registration: the created
// identity and the normalized email, never the password hash.
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ReservationResponse is the representation returned after creating a
// reservation, including navigation links.
type ReservationResponse struct {
	ID              string `json:"id"`
	State           string `json:"state"`
	UserID          string `json:"user_id"`
	BookID          string `json:"book_id"`
	Links           Links  `json:"links"`
	ReservationDate string `json:"reservation_date"`
}

// ReservationListResponse is the admin listing of reservations for a book.
// TotalCount counts reservations whose user record still exists; orphaned
// rows are skipped and logged rather than failing the request.
type ReservationListResponse struct {
	TotalCount int                   `json:"total_count"`
	Items      []ReservationListItem `json:"items"`
}

// BookListResponse is the catalog listing of active books.
type BookListResponse struct {
	TotalCount int    `json:"total_count"`
	Items      []Book `json:"items"`
}
