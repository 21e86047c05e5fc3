package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/models"
)

// reservationRepository is the PostgreSQL-backed implementation of
// [ReservationRepository].
//
// The unique index on (book_id, user_id) is the authoritative guard against
// duplicate reservations: two concurrent creates for the same pair can both
// pass the service-level existence check, but only one insert survives —
// the loser gets [ErrReservationAlreadyExists] from the unique_violation.
type reservationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReservationRepository constructs a [ReservationRepository] backed by the
// provided database connection and logger.
func NewReservationRepository(db *DB, logger *logger.Logger) ReservationRepository {
	logger.Debug().Msg("creating reservation repository")
	return &reservationRepository{
		db:     db,
		logger: logger,
	}
}

// FindReservation looks up the reservation for the (bookID, userID) pair.
// An absent reservation yields (zero, false, nil); only driver failures
// produce an error.
func (r *reservationRepository) FindReservation(ctx context.Context, bookID, userID string) (models.Reservation, bool, error) {
	log := logger.FromContext(ctx)

	var reservation models.Reservation
	row := r.db.QueryRowContext(ctx, findReservation, bookID, userID)

	if err := row.Scan(&reservation.ID, &reservation.BookID, &reservation.UserID, &reservation.State, &reservation.ReservationDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reservation{}, false, nil
		}

		log.Err(err).Str("func", "*reservationRepository.FindReservation").Msg("error: reservation lookup failed")
		return models.Reservation{}, false, r.db.wrapDBError(err)
	}

	return reservation, true, nil
}

// CreateReservation inserts a new reservation and returns the persisted row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the (book_id, user_id) index
//     → [ErrReservationAlreadyExists].
//   - Connection-class failure → wrapped [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *reservationRepository) CreateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReservation,
		reservation.ID, reservation.BookID, reservation.UserID, reservation.State, reservation.ReservationDate)

	var created models.Reservation
	if err := row.Scan(&created.ID, &created.BookID, &created.UserID, &created.State, &created.ReservationDate); err != nil {
		log.Err(err).Str("func", "*reservationRepository.CreateReservation").Msg("error: inserting reservation failed")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Reservation{}, ErrReservationAlreadyExists
		}
		return models.Reservation{}, r.db.wrapDBError(err)
	}

	return created, nil
}

// CountReservationsForBook counts reservations for the book joined against
// existing users, so the total matches what a full listing would return.
func (r *reservationRepository) CountReservationsForBook(ctx context.Context, bookID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountReservationsQuery(bookID)
	if err != nil {
		log.Err(err).Str("func", "*reservationRepository.CountReservationsForBook").Msg("error: building count query failed")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*reservationRepository.CountReservationsForBook").Msg("error: counting reservations failed")
		return 0, r.db.wrapDBError(err)
	}

	return count, nil
}

// ListReservationsForBook returns a page of reservations for the book joined
// against user display fields, in insertion order.
//
// Rows are produced with a LEFT JOIN: when the reserving user no longer
// exists, forenames/surname come back NULL and the row is returned with
// UserFound=false so the caller can skip it and log a diagnostic instead of
// failing the whole listing.
func (r *reservationRepository) ListReservationsForBook(ctx context.Context, bookID string, offset, limit int) ([]models.ReservationRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReservationsQuery(bookID, offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*reservationRepository.ListReservationsForBook").Msg("error: building list query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reservationRepository.ListReservationsForBook").Msg("error: listing reservations failed")
		return nil, r.db.wrapDBError(err)
	}
	defer rows.Close()

	items := make([]models.ReservationRow, 0, limit)
	for rows.Next() {
		var item models.ReservationRow
		var forenames, surname sql.NullString

		if err := rows.Scan(&item.ID, &item.BookID, &item.UserID, &item.State, &item.ReservationDate,
			&forenames, &surname, &item.UserFound); err != nil {
			log.Err(err).Str("func", "*reservationRepository.ListReservationsForBook").Msg("error: scanning reservation row failed")
			return nil, ErrScanningRows
		}

		item.User = models.ReservationUser{
			Forenames: forenames.String,
			Surname:   surname.String,
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, r.db.wrapDBError(err)
	}

	return items, nil
}
