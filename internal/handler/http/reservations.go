// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openshelf authors

package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/service"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/internal/utils"
	"github.com/openshelf/catalog/models"
)

const (
	defaultListOffset = 0
	defaultListLimit  = 20
)

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated route reached without a user in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookID := chi.URLParam(r, "book_id")

	reservation, err := h.services.ReservationService.CreateReservation(ctx, bookID, currentUser)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBookID):
			utils.WriteError(w, "Invalid Book ID", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrBookNotFound):
			utils.WriteError(w, "Book not found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrReservationAlreadyExists):
			log.Err(err).Msg("duplicate reservation rejected")
			utils.WriteError(w, "You have already reserved this book", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during reservation creation")
			status := statusFromError(err)
			utils.WriteError(w, http.StatusText(status), status)
			return
		}
	}

	utils.WriteJSON(w, models.ReservationResponse{
		ID:              reservation.ID,
		State:           reservation.State,
		UserID:          reservation.UserID,
		BookID:          reservation.BookID,
		Links:           utils.AbsoluteLinks(models.ReservationLinks(reservation.BookID), utils.BaseURLFromRequest(r)),
		ReservationDate: reservation.ReservationDate.Format(time.RFC3339),
	}, http.StatusCreated)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	offset, limit, err := paginationParams(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	bookID := chi.URLParam(r, "book_id")

	total, rows, err := h.services.ReservationService.ListReservationsForBook(ctx, bookID, offset, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBookID):
			utils.WriteError(w, "Invalid Book ID", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrBookNotFound):
			utils.WriteError(w, "Book not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during reservation listing")
			status := statusFromError(err)
			utils.WriteError(w, http.StatusText(status), status)
			return
		}
	}

	base := utils.BaseURLFromRequest(r)
	items := make([]models.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.ReservationListItem{
			ID:     row.ID,
			State:  row.State,
			User:   row.User,
			BookID: row.BookID,
			Links:  utils.AbsoluteLinks(models.ReservationLinks(row.BookID), base),
		})
	}

	utils.WriteJSON(w, models.ReservationListResponse{
		TotalCount: total,
		Items:      items,
	}, http.StatusOK)
}

// paginationParams reads the optional limit/offset query parameters, applying
// the documented defaults. The returned error message is client-facing.
func paginationParams(r *http.Request) (offset, limit int, err error) {
	offset, limit = defaultListOffset, defaultListLimit

	if rawOffset := r.URL.Query().Get("offset"); rawOffset != "" {
		offset, err = strconv.Atoi(rawOffset)
		if err != nil {
			return 0, 0, errors.New("Query parameters 'limit' and 'offset' must be integers.")
		}
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil {
			return 0, 0, errors.New("Query parameters 'limit' and 'offset' must be integers.")
		}
	}

	if offset < 0 || limit < 0 {
		return 0, 0, errors.New("Query parameters 'limit' and 'offset' cannot be negative.")
	}

	return offset, limit, nil
}
