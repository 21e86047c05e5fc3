package http

import (
	"errors"
	"net/http"

	"github.com/openshelf/catalog/internal/service"
	"github.com/openshelf/catalog/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrEmailAndPasswordRequired: http.StatusBadRequest,
	service.ErrInvalidEmail:             http.StatusBadRequest,
	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:           http.StatusUnauthorized,
	service.ErrTokenIsInvalid:           http.StatusUnauthorized,
	service.ErrTokenCreationFailed:      http.StatusInternalServerError,
	service.ErrInvalidBookID:            http.StatusBadRequest,
	service.ErrMissingBookFields:        http.StatusBadRequest,

	store.ErrEmailAlreadyExists:       http.StatusConflict,
	store.ErrNoUserWasFound:           http.StatusNotFound,
	store.ErrBookNotFound:             http.StatusNotFound,
	store.ErrReservationAlreadyExists: http.StatusConflict,

	store.ErrStoreUnavailable: http.StatusServiceUnavailable,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
