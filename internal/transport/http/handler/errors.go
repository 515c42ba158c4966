package handler

import (
	"errors"
	"net/http"

	"github.com/worklink-app/worklink/internal/domain"
)

const errInternalServer = "Internal server error"

// statusFor maps a domain error onto the HTTP error taxonomy. Every
// handler goes through this table so the same failure always gets the
// same status, and 500s never leak detail.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidDuration):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrMissingProfile):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInviteInvalid),
		errors.Is(err, domain.ErrProfileLinked):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, errInternalServer
	}
}
