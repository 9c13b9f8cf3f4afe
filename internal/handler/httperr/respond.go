package httperr

import (
	"net/http"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgInvalidRange = "select a valid date range"

// Respond picks the status from the error category and aborts the request.
// Server errors never leak their message.
func Respond(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	switch {
	case errs.IsAny(err, availability.ErrInvalidRange, availability.ErrStartAfterEnd, availability.ErrInvalidDate):
		return http.StatusBadRequest, msgInvalidRange
	case errs.IsAny(err, queries.ErrInvalidCursor, queries.ErrWindowTooWide, availability.ErrCostOverflow):
		return http.StatusBadRequest, err.Error()
	case errs.IsAny(err, errs.ErrNotFound, queries.ErrListingNotFound, queries.ErrBookingNotFound, queries.ErrUserNotFound, queries.ErrReviewNotFound, queries.ErrAmenityNotFound):
		return http.StatusNotFound, err.Error()
	case errs.IsAny(err, errs.ErrForbidden, queries.ErrBookingAccess, queries.ErrUserInactive):
		return http.StatusForbidden, err.Error()
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error()
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
