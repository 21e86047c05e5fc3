// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openshelf authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/models"
)

func newTestReservationRepo(t *testing.T) (*reservationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &reservationRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

var reservationColumns = []string{"id", "book_id", "user_id", "state", "reservation_date"}

func TestFindReservation_Found(t *testing.T) {
	repo, mock, db := newTestReservationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.
		NewRows(reservationColumns).
		AddRow("res-id", "book-id", "user-id", models.ReservationStateReserved, now)

	mock.ExpectQuery("SELECT id, book_id").
		WithArgs("book-id", "user-id").
		WillReturnRows(rows)

	reservation, exists, err := repo.FindReservation(ctx, "book-id", "user-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected reservation to exist")
	}
	if reservation.State != models.ReservationStateReserved {
		t.Errorf("expected state %q, got %q", models.ReservationStateReserved, reservation.State)
	}
}

func TestFindReservation_Absent(t *testing.T) {
	repo, mock, db := newTestReservationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, book_id").
		WithArgs("book-id", "user-id").
		WillReturnError(sql.ErrNoRows)

	_, exists, err := repo.FindReservation(ctx, "book-id", "user-id")
	if err != nil {
		t.Fatalf("an absent reservation must not be an error, got %v", err)
	}
	if exists {
		t.Fatal("expected reservation to be absent")
	}
}

func TestCreateReservation_Success(t *testing.T) {
	repo, mock, db := newTestReservationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	reservation := models.Reservation{
		ID:              "res-id",
		BookID:          "book-id",
		UserID:          "user-id",
		State:           models.ReservationStateReserved,
		ReservationDate: now,
	}

	rows := sqlmock.
		NewRows(reservationColumns).
		AddRow(reservation.ID, reservation.BookID, reservation.UserID, reservation.State, now)

	mock.ExpectQuery("INSERT INTO reservations").
		WithArgs(reservation.ID, reservation.BookID, reservation.UserID, reservation.State, reservation.ReservationDate).
		WillReturnRows(rows)

	created, err := repo.CreateReservation(ctx, reservation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != reservation.ID {
		t.Errorf("expected id %s, got %s", reservation.ID, created.ID)
	}
}

func TestCreateReservation_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestReservationRepo(t)
	defer db.Close()

	ctx := context.Background()

	// the (book_id, user_id) unique index is the authoritative duplicate guard
	mock.ExpectQuery("INSERT INTO reservations").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateReservation(ctx, models.Reservation{BookID: "book-id", UserID: "user-id"})
	if !errors.Is(err, ErrReservationAlreadyExists) {
		t.Fatalf("expected ErrReservationAlreadyExists, got %v", err)
	}
}

func TestCreateReservation_ConnectionFailure(t *testing.T) {
	repo, mock, db := newTestReservationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO reservations").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateReservation(ctx, models.Reservation{BookID: "book-id", UserID: "user-id"})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestCountReservationsForBook_Success(t *testing.T) {
	repo, mock, db := newTestReservationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("book-id").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountReservationsForBook(ctx, "book-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
}

func TestListReservationsForBook_OrphanedUser(t *testing.T) {
	repo, mock, db := newTestReservationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	columns := []string{"id", "book_id", "user_id", "state", "reservation_date", "forenames", "surname", "user_found"}
	rows := sqlmock.
		NewRows(columns).
		AddRow("res-1", "book-id", "user-1", models.ReservationStateReserved, now, "Alice", "Smith", true).
		AddRow("res-2", "book-id", "user-gone", models.ReservationStateReserved, now, nil, nil, false)

	mock.ExpectQuery("SELECT r.id").
		WillReturnRows(rows)

	items, err := repo.ListReservationsForBook(ctx, "book-id", 0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}

	if !items[0].UserFound {
		t.Error("expected first row to reference an existing user")
	}
	if items[0].User.Forenames != "Alice" || items[0].User.Surname != "Smith" {
		t.Errorf("unexpected user fields: %+v", items[0].User)
	}

	if items[1].UserFound {
		t.Error("expected second row to be flagged as orphaned")
	}
	if items[1].User.Forenames != "" || items[1].User.Surname != "" {
		t.Errorf("expected empty user fields for an orphaned row, got %+v", items[1].User)
	}
}

func TestListReservationsForBook_Empty(t *testing.T) {
	repo, mock, db := newTestReservationRepo(t)
	defer db.Close()

	ctx := context.Background()

	columns := []string{"id", "book_id", "user_id", "state", "reservation_date", "forenames", "surname", "user_found"}
	mock.ExpectQuery("SELECT r.id").
		WillReturnRows(sqlmock.NewRows(columns))

	items, err := repo.ListReservationsForBook(ctx, "book-id", 0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(items))
	}
}
