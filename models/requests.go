package models

// RegisterRequest is the body of POST /auth/register. Forenames and Surname
// are optional display names; Email and Password are required.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Forenames string `json:"forenames,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BookRequest is the body of the catalog write endpoints
// (POST /books, PUT /books/{book_id}).
type BookRequest struct {
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
	Author   string `json:"author"`
}
