package httperr

import (
	"errors"
	"net/http"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/usecase/commands"
	"paintball-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type mapping struct {
	target error
	status int
	msg    string
}

// first match wins
var domainErrors = []mapping{
	{errs.ErrPackageNotFound, http.StatusNotFound, "Package not found"},
	{errs.ErrAddonNotFound, http.StatusNotFound, "Addon not found"},
	{errs.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrBookingConflict, http.StatusConflict, "Slot is already booked"},
	{errs.ErrInvalidStatusTransition, http.StatusConflict, "Invalid status transition"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key reused with a different request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request is currently being processed"},
	{errs.ErrOutsideOpeningHours, http.StatusUnprocessableEntity, "Session is outside opening hours"},
	{booking.ErrLeadTimeNotMet, http.StatusUnprocessableEntity, "Insufficient lead time for booking"},
	{booking.ErrResourceNotBookable, http.StatusUnprocessableEntity, "Resource is not bookable"},
	{booking.ErrBreakdownMismatch, http.StatusUnprocessableEntity, "Quote is inconsistent"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
}

// AbortWithDomainError maps err to its HTTP status. Unknown errors answer 500.
func AbortWithDomainError(c *gin.Context, err error) {
	if ve, ok := errs.AsValidation(err); ok {
		AbortWithField(c, err, ve.Field, ve.Reason)
		return
	}
	for _, m := range domainErrors {
		if errs.Is(err, m.target) {
			AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// AbortWithBindError answers 400 for a binding failure, naming the first invalid field.
func AbortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		AbortWithField(c, err, fe.Field(), "failed on '"+fe.Tag()+"'")
		return
	}
	if ve, ok := errs.AsValidation(err); ok {
		AbortWithField(c, err, ve.Field, ve.Reason)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}
