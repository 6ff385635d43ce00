package http

import (
	"errors"
	"net/http"

	"github.com/centraplate/registry/internal/service"
	"github.com/centraplate/registry/internal/store"
)

// errorStatusMap declares the HTTP status for every sentinel error that may
// cross the transport boundary. Conflict-style failures (duplicate email,
// plate already taken, stale or reused passcodes) surface as 400 so the
// client treats them as a bad submission rather than a retryable state.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrAlreadyVerified:         http.StatusBadRequest,
	service.ErrInvalidOtpCode:          http.StatusBadRequest,
	service.ErrOtpExpired:              http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotVerified:             http.StatusForbidden,
	service.ErrAdminOnly:               http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists:       http.StatusBadRequest,
	store.ErrOtpAlreadyRedeemed:       http.StatusBadRequest,
	store.ErrPlateAlreadyTaken:        http.StatusBadRequest,
	store.ErrUserAlreadyHasPlate:      http.StatusBadRequest,
	store.ErrVehicleAlreadyRegistered: http.StatusBadRequest,
	store.ErrUserNotFound:             http.StatusNotFound,
	store.ErrOtpNotFound:              http.StatusNotFound,
	store.ErrPlateNotFound:            http.StatusNotFound,
	store.ErrVehicleNotFound:          http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
