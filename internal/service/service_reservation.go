// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openshelf authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/models"
)

// reservationService is the concrete implementation of ReservationService.
type reservationService struct {
	bookRepository        store.BookRepository
	reservationRepository store.ReservationRepository
	logger                *logger.Logger
}

// NewReservationService constructs a ReservationService backed by the given
// repositories.
func NewReservationService(
	bookRepository store.BookRepository,
	reservationRepository store.ReservationRepository,
	logger *logger.Logger,
) ReservationService {
	return &reservationService{
		bookRepository:        bookRepository,
		reservationRepository: reservationRepository,
		logger:                logger,
	}
}

// CreateReservation reserves the book identified by bookID for the given
// user.
//
// The flow is: parse the id, confirm the book exists and is active, reject a
// duplicate reservation by the same user, then insert. The existence
// pre-check is a fast path only; the unique index on (book_id, user_id) is
// the authoritative guard, so a concurrent duplicate insert still surfaces
// as store.ErrReservationAlreadyExists.
//
// Possible errors: ErrInvalidBookID, store.ErrBookNotFound,
// store.ErrReservationAlreadyExists.
func (r *reservationService) CreateReservation(ctx context.Context, bookID string, user models.User) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(bookID); err != nil {
		return models.Reservation{}, ErrInvalidBookID
	}

	if _, err := r.bookRepository.FindBookByID(ctx, bookID); err != nil {
		return models.Reservation{}, fmt.Errorf("book lookup ended with error: %w", err)
	}

	_, exists, err := r.reservationRepository.FindReservation(ctx, bookID, user.ID)
	if err != nil {
		log.Err(err).Msg("reservation lookup ended with error")
		return models.Reservation{}, fmt.Errorf("reservation lookup ended with error: %w", err)
	}
	if exists {
		return models.Reservation{}, store.ErrReservationAlreadyExists
	}

	reservation := models.Reservation{
		ID:              uuid.NewString(),
		BookID:          bookID,
		UserID:          user.ID,
		State:           models.ReservationStateReserved,
		ReservationDate: time.Now().UTC(),
	}

	createdReservation, err := r.reservationRepository.CreateReservation(ctx, reservation)
	if err != nil {
		log.Err(err).Msg("reservation creation ended with error")
		return models.Reservation{}, fmt.Errorf("reservation creation ended with error: %w", err)
	}

	log.Info().
		Str("reservation_id", createdReservation.ID).
		Str("book_id", bookID).
		Str("user_id", user.ID).
		Msg("reservation created")

	return createdReservation, nil
}

// ListReservationsForBook returns the total reservation count for the book
// together with one page of reservations, ordered by reservation date.
//
// A reservation whose user record has vanished is skipped and logged; the
// count query joins against users the same way, so the total always matches
// the number of listable rows.
func (r *reservationService) ListReservationsForBook(ctx context.Context, bookID string, offset, limit int) (int, []models.ReservationRow, error) {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(bookID); err != nil {
		return 0, nil, ErrInvalidBookID
	}

	if _, err := r.bookRepository.FindBookByID(ctx, bookID); err != nil {
		return 0, nil, fmt.Errorf("book lookup ended with error: %w", err)
	}

	total, err := r.reservationRepository.CountReservationsForBook(ctx, bookID)
	if err != nil {
		log.Err(err).Msg("reservation count ended with error")
		return 0, nil, fmt.Errorf("reservation count ended with error: %w", err)
	}

	rows, err := r.reservationRepository.ListReservationsForBook(ctx, bookID, offset, limit)
	if err != nil {
		log.Err(err).Msg("reservation listing ended with error")
		return 0, nil, fmt.Errorf("reservation listing ended with error: %w", err)
	}

	listable := rows[:0]
	for _, row := range rows {
		if !row.UserFound {
			log.Warn().
				Str("reservation_id", row.Reservation.ID).
				Str("user_id", row.Reservation.UserID).
				Msg("reservation references a missing user, skipping")
			continue
		}
		listable = append(listable, row)
	}

	return total, listable, nil
}
