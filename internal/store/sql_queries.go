package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, email, password_hash, role, forenames, surname)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, email, role, forenames, surname, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, role, forenames, surname, created_at
    FROM users
    WHERE email = $1;`

	// password_hash is deliberately excluded: this lookup backs the
	// authentication middleware and the hash must never leave the login flow.
	findUserByID = `SELECT id, email, role, forenames, surname, created_at
    FROM users
    WHERE id = $1;`

	createBook = `INSERT INTO books (id, title, synopsis, author, state)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, title, synopsis, author, state;`

	updateBook = `UPDATE books
    SET title = $2, synopsis = $3, author = $4
    WHERE id = $1 AND state <> 'deleted'
    RETURNING id, title, synopsis, author, state;`

	softDeleteBook = `UPDATE books
    SET state = 'deleted'
    WHERE id = $1 AND state <> 'deleted';`

	findBookByID = `SELECT id, title, synopsis, author, state
    FROM books
    WHERE id = $1 AND state <> 'deleted';`

	listActiveBooks = `SELECT id, title, synopsis, author, state
    FROM books
    WHERE state <> 'deleted'
    ORDER BY created_at, id;`

	createReservation = `INSERT INTO reservations (id, book_id, user_id, state, reservation_date)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, book_id, user_id, state, reservation_date;`

	findReservation = `SELECT id, book_id, user_id, state, reservation_date
    FROM reservations
    WHERE book_id = $1 AND user_id = $2;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// dollar-sign placeholders. Used for the dynamic reservation listing queries.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListReservationsQuery builds the paginated reservation listing joined
// against user display fields. A LEFT JOIN is used on purpose: a reservation
// whose user record has disappeared must still surface (with user_found =
// false) so the caller can skip and log it instead of failing the request.
func buildListReservationsQuery(bookID string, offset, limit int) (string, []any, error) {
	return psql.
		Select(
			"r.id",
			"r.book_id",
			"r.user_id",
			"r.state",
			"r.reservation_date",
			"u.forenames",
			"u.surname",
			"u.id IS NOT NULL AS user_found",
		).
		From("reservations r").
		LeftJoin("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.book_id": bookID}).
		OrderBy("r.reservation_date", "r.id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
}

// buildCountReservationsQuery counts the reservations for a book whose
// reserving user still exists (INNER JOIN), so total_count matches the set of
// rows a full listing would actually return.
func buildCountReservationsQuery(bookID string) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("reservations r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.book_id": bookID}).
		ToSql()
}
