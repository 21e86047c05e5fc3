package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/service"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/internal/utils"
	"github.com/openshelf/catalog/models"
)

const testBookID = "b7e2a1d0-5c3f-4e88-9d41-2a6f0c9e7712"

var testUser = models.User{ID: "0c2d7d7e-33d5-4f22-9f16-6b2f8e3a88f1", Role: models.RoleUser}

// reservationRequest builds a request carrying the chi URL parameter and the
// authenticated user, as the middleware chain would have prepared it.
func reservationRequest(t *testing.T, method, bookID string, user models.User) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, "/books/"+bookID+"/reservations", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("book_id", bookID)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)

	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// createReservation
// ─────────────────────────────────────────────

func TestCreateReservation_Success(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	reservations := &mockReservationService{
		createReservationFn: func(_ context.Context, bookID string, user models.User) (models.Reservation, error) {
			assert.Equal(t, testBookID, bookID)
			assert.Equal(t, testUser.ID, user.ID)
			return models.Reservation{
				ID:              "res-id",
				BookID:          bookID,
				UserID:          user.ID,
				State:           models.ReservationStateReserved,
				ReservationDate: now,
			}, nil
		},
	}

	h := newTestHandler(t, nil, nil, reservations)
	req := reservationRequest(t, http.MethodPost, testBookID, testUser)
	rec := httptest.NewRecorder()

	h.createReservation(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "res-id", resp.ID)
	assert.Equal(t, models.ReservationStateReserved, resp.State)
	assert.Equal(t, now.Format(time.RFC3339), resp.ReservationDate)

	// links must be absolute, resolved against the request host
	assert.Contains(t, resp.Links["book"], "http://")
	assert.Contains(t, resp.Links["book"], "/books/"+testBookID)
}

func TestCreateReservation_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid book id",
			serviceErr:  service.ErrInvalidBookID,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid Book ID",
		},
		{
			name:        "book not found",
			serviceErr:  store.ErrBookNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Book not found",
		},
		{
			name:        "duplicate reservation",
			serviceErr:  store.ErrReservationAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "You have already reserved this book",
		},
		{
			name:        "store unavailable",
			serviceErr:  store.ErrStoreUnavailable,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: http.StatusText(http.StatusServiceUnavailable),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservations := &mockReservationService{
				createReservationFn: func(_ context.Context, _ string, _ models.User) (models.Reservation, error) {
					return models.Reservation{}, tt.serviceErr
				},
			}

			h := newTestHandler(t, nil, nil, reservations)
			req := reservationRequest(t, http.MethodPost, testBookID, testUser)
			rec := httptest.NewRecorder()

			h.createReservation(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

// ─────────────────────────────────────────────
// listReservations
// ─────────────────────────────────────────────

func TestListReservations_Success(t *testing.T) {
	reservations := &mockReservationService{
		listReservationsFn: func(_ context.Context, bookID string, offset, limit int) (int, []models.ReservationRow, error) {
			assert.Equal(t, testBookID, bookID)
			assert.Equal(t, 0, offset)
			assert.Equal(t, 20, limit)
			return 1, []models.ReservationRow{
				{
					Reservation: models.Reservation{ID: "res-1", BookID: bookID, UserID: "user-1", State: models.ReservationStateReserved},
					User:        models.ReservationUser{Forenames: "Alice", Surname: "Smith"},
					UserFound:   true,
				},
			}, nil
		},
	}

	h := newTestHandler(t, nil, nil, reservations)
	req := reservationRequest(t, http.MethodGet, testBookID, testUser)
	rec := httptest.NewRecorder()

	h.listReservations(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ReservationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Alice", resp.Items[0].User.Forenames)
	assert.Equal(t, "Smith", resp.Items[0].User.Surname)
}

func TestListReservations_PaginationPassedThrough(t *testing.T) {
	reservations := &mockReservationService{
		listReservationsFn: func(_ context.Context, _ string, offset, limit int) (int, []models.ReservationRow, error) {
			assert.Equal(t, 5, offset)
			assert.Equal(t, 2, limit)
			return 0, nil, nil
		},
	}

	h := newTestHandler(t, nil, nil, reservations)
	req := reservationRequest(t, http.MethodGet, testBookID, testUser)
	req.URL.RawQuery = "offset=5&limit=2"
	rec := httptest.NewRecorder()

	h.listReservations(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListReservations_BadPagination(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantMessage string
	}{
		{
			name:        "non-integer limit",
			query:       "limit=abc",
			wantMessage: "Query parameters 'limit' and 'offset' must be integers.",
		},
		{
			name:        "non-integer offset",
			query:       "offset=1.5",
			wantMessage: "Query parameters 'limit' and 'offset' must be integers.",
		},
		{
			name:        "negative offset",
			query:       "offset=-1",
			wantMessage: "Query parameters 'limit' and 'offset' cannot be negative.",
		},
		{
			name:        "negative limit",
			query:       "limit=-5",
			wantMessage: "Query parameters 'limit' and 'offset' cannot be negative.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil, nil, &mockReservationService{})
			req := reservationRequest(t, http.MethodGet, testBookID, testUser)
			req.URL.RawQuery = tt.query
			rec := httptest.NewRecorder()

			h.listReservations(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

func TestListReservations_BookNotFound(t *testing.T) {
	reservations := &mockReservationService{
		listReservationsFn: func(_ context.Context, _ string, _, _ int) (int, []models.ReservationRow, error) {
			return 0, nil, store.ErrBookNotFound
		},
	}

	h := newTestHandler(t, nil, nil, reservations)
	req := reservationRequest(t, http.MethodGet, testBookID, testUser)
	rec := httptest.NewRecorder()

	h.listReservations(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book not found")
}
